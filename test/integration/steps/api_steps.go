package steps

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"

	"github.com/iuran-warga/backend/internal/domain/entity"
)

// proofPayload is a small valid base64 payload standing in for a transfer
// proof photo.
func proofPayload(content string) string {
	return base64.StdEncoding.EncodeToString([]byte(content))
}

func registerAccountSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^an admin account with KK "([^"]*)" and password "([^"]*)"$`, anAdminAccountExists)
	ctx.Step(`^a chair account with KK "([^"]*)" and password "([^"]*)"$`, aChairAccountExists)
	ctx.Step(`^I register a resident with KK "([^"]*)" named "([^"]*)" and password "([^"]*)"$`, iRegisterAResident)
	ctx.Step(`^"([^"]*)" logs in with password "([^"]*)"$`, logsInWithPassword)
}

func registerBillingSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^"([^"]*)" creates a billing cycle named "([^"]*)" dated "([^"]*)" with item "([^"]*)" priced (\d+)$`, createsABillingCycle)
}

func registerPaymentSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^"([^"]*)" submits a payment for that cycle with note "([^"]*)"$`, submitsAPayment)
	ctx.Step(`^"([^"]*)" resubmits that claim with note "([^"]*)"$`, resubmitsTheClaim)
	ctx.Step(`^"([^"]*)" reviews that claim as "([^"]*)" with note "([^"]*)"$`, reviewsTheClaim)
	ctx.Step(`^"([^"]*)" fetches that claim$`, fetchesTheClaim)
	ctx.Step(`^the claim should have (\d+) attempts and (\d+) admin responses$`, theClaimShouldHaveCounts)
}

func registerDirectorySteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^"([^"]*)" syncs the resident directory$`, syncsTheDirectory)
	ctx.Step(`^the directory seen by "([^"]*)" shows "([^"]*)" as paid for "([^"]*)"$`, directoryShowsPaid)
	ctx.Step(`^the inbox of "([^"]*)" contains "([^"]*)"$`, inboxContains)
}

func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^"([^"]*)" records a "([^"]*)" of (\d+) in category "([^"]*)" on "([^"]*)"$`, recordsALedgerEntry)
	ctx.Step(`^"([^"]*)" publishes periode "([^"]*)"$`, publishesPeriode)
	ctx.Step(`^"([^"]*)" requests the resident report for periode "([^"]*)"$`, requestsResidentReport)
	ctx.Step(`^"([^"]*)" imports verified payments into the ledger$`, importsVerifiedPayments)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// Account steps

func anAdminAccountExists(ctx context.Context, kk, password string) error {
	return GetTestContext(ctx).seedAccount(kk, "Admin RT", password, entity.RoleAdmin)
}

func aChairAccountExists(ctx context.Context, kk, password string) error {
	return GetTestContext(ctx).seedAccount(kk, "Pak RT", password, entity.RoleRT)
}

func iRegisterAResident(ctx context.Context, kk, name, password string) error {
	tc := GetTestContext(ctx)
	return tc.doJSON(http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"kk":       kk,
		"name":     name,
		"password": password,
	})
}

func logsInWithPassword(ctx context.Context, kk, password string) error {
	tc := GetTestContext(ctx)
	if err := tc.doJSON(http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"kk":       kk,
		"password": password,
	}); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	token, err := tc.responseField("token")
	if err != nil {
		return err
	}
	tc.tokens[kk] = fmt.Sprint(token)
	return nil
}

// Billing steps

func createsABillingCycle(ctx context.Context, kk, name, date, itemName string, price int) error {
	tc := GetTestContext(ctx)
	if err := tc.doJSON(http.MethodPost, "/api/v1/tagihan", tc.tokens[kk], map[string]interface{}{
		"name": name,
		"date": date,
		"items": []map[string]interface{}{
			{"name": itemName, "price": price},
		},
	}); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("cycle creation failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	id, err := tc.responseField("id")
	if err != nil {
		return err
	}
	tc.cycleID = fmt.Sprint(id)
	return nil
}

// Payment steps

func submitsAPayment(ctx context.Context, kk, note string) error {
	tc := GetTestContext(ctx)
	if err := tc.doJSON(http.MethodPost, "/api/v1/payments", tc.tokens[kk], map[string]interface{}{
		"billingCycleId": tc.cycleID,
		"proofImage":     proofPayload("bukti-transfer"),
		"description":    note,
	}); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("submission failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	id, err := tc.responseField("id")
	if err != nil {
		return err
	}
	tc.claimID = fmt.Sprint(id)
	return nil
}

func resubmitsTheClaim(ctx context.Context, kk, note string) error {
	tc := GetTestContext(ctx)
	return tc.doJSON(http.MethodPost, "/api/v1/payments/"+tc.claimID+"/resubmit", tc.tokens[kk], map[string]interface{}{
		"proofImage":  proofPayload("bukti-transfer-baru"),
		"description": note,
	})
}

func reviewsTheClaim(ctx context.Context, kk, status, note string) error {
	tc := GetTestContext(ctx)
	return tc.doJSON(http.MethodPost, "/api/v1/payments/"+tc.claimID+"/review", tc.tokens[kk], map[string]interface{}{
		"status": status,
		"note":   note,
	})
}

func fetchesTheClaim(ctx context.Context, kk string) error {
	tc := GetTestContext(ctx)
	return tc.doJSON(http.MethodGet, "/api/v1/payments/"+tc.claimID, tc.tokens[kk], nil)
}

func theClaimShouldHaveCounts(ctx context.Context, attempts, responses int) error {
	tc := GetTestContext(ctx)

	var claim struct {
		Attempts       []json.RawMessage `json:"attempts"`
		AdminResponses []json.RawMessage `json:"adminResponses"`
	}
	if err := json.Unmarshal(tc.responseBody, &claim); err != nil {
		return fmt.Errorf("response is not a claim: %w", err)
	}
	if len(claim.Attempts) != attempts {
		return fmt.Errorf("expected %d attempts, got %d", attempts, len(claim.Attempts))
	}
	if len(claim.AdminResponses) != responses {
		return fmt.Errorf("expected %d admin responses, got %d", responses, len(claim.AdminResponses))
	}
	return nil
}

// Directory steps

func syncsTheDirectory(ctx context.Context, kk string) error {
	tc := GetTestContext(ctx)
	return tc.doJSON(http.MethodPost, "/api/v1/warga/sync", tc.tokens[kk], nil)
}

func directoryShowsPaid(ctx context.Context, kk, nama, month string) error {
	tc := GetTestContext(ctx)
	if err := tc.doJSON(http.MethodGet, "/api/v1/warga?limit=100", tc.tokens[kk], nil); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("directory listing failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	var listing struct {
		Entries []struct {
			Nama          string          `json:"nama"`
			PaymentStatus map[string]bool `json:"paymentStatus"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(tc.responseBody, &listing); err != nil {
		return fmt.Errorf("response is not a directory listing: %w", err)
	}

	for _, entry := range listing.Entries {
		if entry.Nama == nama {
			if !entry.PaymentStatus[month] {
				return fmt.Errorf("%s is not marked paid for %s", nama, month)
			}
			return nil
		}
	}
	return fmt.Errorf("no directory entry for %s", nama)
}

func inboxContains(ctx context.Context, kk, title string) error {
	tc := GetTestContext(ctx)
	if err := tc.doJSON(http.MethodGet, "/api/v1/notifications", tc.tokens[kk], nil); err != nil {
		return err
	}

	var inbox struct {
		Notifications []struct {
			Title string `json:"title"`
		} `json:"notifications"`
	}
	if err := json.Unmarshal(tc.responseBody, &inbox); err != nil {
		return fmt.Errorf("response is not an inbox: %w", err)
	}

	for _, n := range inbox.Notifications {
		if n.Title == title {
			return nil
		}
	}
	return fmt.Errorf("no notification titled %q in the inbox", title)
}

// Ledger steps

func recordsALedgerEntry(ctx context.Context, kk, jenis string, jumlah int, kategori, tanggal string) error {
	tc := GetTestContext(ctx)
	return tc.doJSON(http.MethodPost, "/api/v1/laporan", tc.tokens[kk], map[string]interface{}{
		"tanggal":        tanggal,
		"jenisTransaksi": jenis,
		"kategori":       kategori,
		"jumlah":         jumlah,
	})
}

func publishesPeriode(ctx context.Context, kk, periode string) error {
	tc := GetTestContext(ctx)
	return tc.doJSON(http.MethodPost, "/api/v1/laporan/publish", tc.tokens[kk], map[string]interface{}{
		"periode": periode,
	})
}

func requestsResidentReport(ctx context.Context, kk, periode string) error {
	tc := GetTestContext(ctx)
	return tc.doJSON(http.MethodGet, "/api/v1/laporan/resident?periode="+periode, tc.tokens[kk], nil)
}

func importsVerifiedPayments(ctx context.Context, kk string) error {
	tc := GetTestContext(ctx)
	return tc.doJSON(http.MethodPost, "/api/v1/laporan/import-payments", tc.tokens[kk], nil)
}

// Response steps

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc.response == nil {
		return fmt.Errorf("no response captured")
	}
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	value, err := tc.responseField(path)
	if err != nil {
		return err
	}
	if fmt.Sprint(value) != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, fmt.Sprint(value))
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	_, err := tc.responseField(path)
	return err
}
