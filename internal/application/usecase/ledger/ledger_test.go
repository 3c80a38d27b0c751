package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iuran-warga/backend/internal/domain/entity"
	domainerror "github.com/iuran-warga/backend/internal/domain/error"
)

func seedEntry(repo *fakeLedgerRepo, kind entity.TransactionKind, amount int64, periode string) *entity.LedgerEntry {
	tanggal, _ := time.Parse("2006-01", periode)
	entry := entity.NewLedgerEntry(
		tanggal, kind, "Kas", "", decimal.NewFromInt(amount), "", periode, uuid.New(),
	)
	repo.entries[entry.ID] = entry
	return entry
}

func TestRecordEntryUseCase_Execute(t *testing.T) {
	t.Run("records an expense with receipts", func(t *testing.T) {
		repo := newFakeLedgerRepo()
		store := &fakeImageStore{}
		uc := NewRecordEntryUseCase(repo, store)

		entry, err := uc.Execute(context.Background(), RecordEntryInput{
			Tanggal:        time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC),
			JenisTransaksi: entity.KindPengeluaran,
			Kategori:       "Kebersihan",
			PihakKetiga:    "CV Bersih",
			Jumlah:         decimal.NewFromInt(150000),
			BuktiTransaksi: []string{"aGVsbG8="},
			CreatedBy:      uuid.New(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Periode != "2025-07" {
			t.Errorf("expected periode derived from tanggal, got %q", entry.Periode)
		}
		if len(entry.BuktiTransaksi) != 1 || store.saved != 1 {
			t.Error("expected one stored receipt")
		}
	})

	t.Run("rejects unknown kinds and negative amounts", func(t *testing.T) {
		uc := NewRecordEntryUseCase(newFakeLedgerRepo(), &fakeImageStore{})

		_, err := uc.Execute(context.Background(), RecordEntryInput{
			JenisTransaksi: "transfer",
			Kategori:       "Kas",
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionKind) {
			t.Errorf("expected ErrInvalidTransactionKind, got %v", err)
		}

		_, err = uc.Execute(context.Background(), RecordEntryInput{
			JenisTransaksi: entity.KindPemasukan,
			Kategori:       "Kas",
			Jumlah:         decimal.NewFromInt(-1),
		})
		if !errors.Is(err, domainerror.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("rejects a malformed periode", func(t *testing.T) {
		uc := NewRecordEntryUseCase(newFakeLedgerRepo(), &fakeImageStore{})
		_, err := uc.Execute(context.Background(), RecordEntryInput{
			JenisTransaksi: entity.KindPemasukan,
			Kategori:       "Kas",
			Jumlah:         decimal.NewFromInt(1000),
			Periode:        "2025-13",
		})
		if !errors.Is(err, domainerror.ErrInvalidPeriode) {
			t.Errorf("expected ErrInvalidPeriode, got %v", err)
		}
	})
}

func TestSummarizeUseCase_Execute(t *testing.T) {
	repo := newFakeLedgerRepo()
	seedEntry(repo, entity.KindPemasukan, 500000, "2025-07")
	seedEntry(repo, entity.KindPemasukan, 75000, "2025-07")
	seedEntry(repo, entity.KindPengeluaran, 200000, "2025-07")
	seedEntry(repo, entity.KindPemasukan, 100000, "2025-06")

	uc := NewSummarizeUseCase(repo)

	t.Run("saldo is pemasukan minus pengeluaran", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), SummarizeInput{Periode: "2025-07"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Summaries) != 1 {
			t.Fatalf("expected 1 summary, got %d", len(out.Summaries))
		}
		s := out.Summaries[0]
		if !s.Pemasukan.Equal(decimal.NewFromInt(575000)) {
			t.Errorf("expected pemasukan 575000, got %s", s.Pemasukan)
		}
		if !s.Pengeluaran.Equal(decimal.NewFromInt(200000)) {
			t.Errorf("expected pengeluaran 200000, got %s", s.Pengeluaran)
		}
		if !s.Saldo.Equal(s.Pemasukan.Sub(s.Pengeluaran)) {
			t.Errorf("saldo must equal pemasukan minus pengeluaran, got %s", s.Saldo)
		}
	})

	t.Run("summarizes every period newest first when unfiltered", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), SummarizeInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Summaries) != 2 {
			t.Fatalf("expected 2 summaries, got %d", len(out.Summaries))
		}
		if out.Summaries[0].Periode != "2025-07" || out.Summaries[1].Periode != "2025-06" {
			t.Errorf("expected descending periods, got %s then %s",
				out.Summaries[0].Periode, out.Summaries[1].Periode)
		}
	})

	t.Run("an empty period yields a zero summary", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), SummarizeInput{Periode: "2024-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Summaries) != 1 || !out.Summaries[0].Saldo.IsZero() {
			t.Error("expected a single zero summary for an empty period")
		}
	})
}

func TestPublishPeriodUseCase_Execute(t *testing.T) {
	publicationRepo := newFakePublicationRepo()
	userRepo := newFakeUserRepo()
	tokens := &fakeDeviceTokenRepo{}
	push := &fakePushSender{}

	budi := entity.NewUser("3171000000000001", "Budi", "hash")
	sari := entity.NewUser("3171000000000002", "Sari", "hash")
	admin := entity.NewUser("3171000000000003", "Admin", "hash")
	admin.Role = entity.RoleAdmin
	userRepo.users[budi.ID] = budi
	userRepo.users[sari.ID] = sari
	userRepo.users[admin.ID] = admin

	tokens.tokens = append(tokens.tokens, entity.NewDeviceToken(budi.ID, "tok-budi"))

	uc := NewPublishPeriodUseCase(publicationRepo, userRepo, tokens, push)

	t.Run("publishes once with a per-resident fan-out", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), PublishPeriodInput{
			Periode:     "2025-07",
			PublishedBy: admin.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Record.Periode != "2025-07" {
			t.Errorf("unexpected record periode %q", out.Record.Periode)
		}

		fanout := publicationRepo.fanouts["2025-07"]
		if len(fanout) != 2 {
			t.Fatalf("expected a notification per resident, got %d", len(fanout))
		}
		for _, n := range fanout {
			if n.IsGlobal || n.UserID == nil {
				t.Error("fan-out notifications must be targeted")
			}
			if n.Type != entity.NotificationTypePublished {
				t.Errorf("expected type published, got %q", n.Type)
			}
		}
		if len(push.sent) != 1 {
			t.Errorf("expected 1 push delivery, got %d", len(push.sent))
		}
	})

	t.Run("publishing the same period again is a conflict", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), PublishPeriodInput{
			Periode:     "2025-07",
			PublishedBy: admin.ID,
		})
		if !errors.Is(err, domainerror.ErrPeriodeAlreadyPublished) {
			t.Errorf("expected ErrPeriodeAlreadyPublished, got %v", err)
		}
	})

	t.Run("rejects a malformed periode", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), PublishPeriodInput{Periode: "July"})
		if !errors.Is(err, domainerror.ErrInvalidPeriode) {
			t.Errorf("expected ErrInvalidPeriode, got %v", err)
		}
	})
}

func TestResidentSummaryUseCase_Execute(t *testing.T) {
	ledgerRepo := newFakeLedgerRepo()
	publicationRepo := newFakePublicationRepo()
	seedEntry(ledgerRepo, entity.KindPemasukan, 75000, "2025-07")

	uc := NewResidentSummaryUseCase(ledgerRepo, publicationRepo)

	t.Run("unpublished periods are not available to residents", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ResidentSummaryInput{Periode: "2025-07"})
		if !errors.Is(err, domainerror.ErrPeriodeNotPublished) {
			t.Errorf("expected ErrPeriodeNotPublished, got %v", err)
		}
	})

	t.Run("published periods serve the summary and entries", func(t *testing.T) {
		publicationRepo.records["2025-07"] = entity.NewPublishedPeriod("2025-07", uuid.New())

		out, err := uc.Execute(context.Background(), ResidentSummaryInput{Periode: "2025-07"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Summary.Pemasukan.Equal(decimal.NewFromInt(75000)) {
			t.Errorf("expected pemasukan 75000, got %s", out.Summary.Pemasukan)
		}
		if len(out.Entries) != 1 {
			t.Errorf("expected 1 entry, got %d", len(out.Entries))
		}
	})

	t.Run("empty periode serves the newest published period", func(t *testing.T) {
		seedEntry(ledgerRepo, entity.KindPemasukan, 50000, "2025-06")
		publicationRepo.records["2025-06"] = entity.NewPublishedPeriod("2025-06", uuid.New())

		out, err := uc.Execute(context.Background(), ResidentSummaryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Summary.Periode != "2025-07" {
			t.Errorf("expected the newest periode 2025-07, got %s", out.Summary.Periode)
		}
	})

	t.Run("empty periode with no publications is not available", func(t *testing.T) {
		fresh := NewResidentSummaryUseCase(ledgerRepo, newFakePublicationRepo())
		_, err := fresh.Execute(context.Background(), ResidentSummaryInput{})
		if !errors.Is(err, domainerror.ErrPeriodeNotPublished) {
			t.Errorf("expected ErrPeriodeNotPublished, got %v", err)
		}
	})
}

func TestImportVerifiedClaimsUseCase_Execute(t *testing.T) {
	claimRepo := newFakeClaimRepo()
	cycleRepo := newFakeCycleRepo()
	userRepo := newFakeUserRepo()
	ledgerRepo := newFakeLedgerRepo()

	budi := entity.NewUser("3171000000000001", "Budi", "hash")
	userRepo.users[budi.ID] = budi

	cycle := entity.NewBillingCycle("Iuran Juli", "", time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		[]entity.BillingItem{{Name: "Iuran", Price: decimal.NewFromInt(75000)}})

	verified := entity.NewPaymentClaim(budi.ID, cycle, entity.SubmissionAttempt{Date: time.Now().UTC()})
	verified.ApplyReview(entity.ClaimStatusVerified, entity.AdminResponse{})
	claimRepo.claims[verified.ID] = verified

	pending := entity.NewPaymentClaim(budi.ID, cycle, entity.SubmissionAttempt{Date: time.Now().UTC()})
	claimRepo.claims[pending.ID] = pending

	uc := NewImportVerifiedClaimsUseCase(claimRepo, cycleRepo, userRepo, ledgerRepo)
	adminID := uuid.New()

	t.Run("imports verified claims as income", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), adminID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Imported != 1 {
			t.Fatalf("expected 1 imported entry, got %d", out.Imported)
		}

		var entry *entity.LedgerEntry
		for _, e := range ledgerRepo.entries {
			entry = e
		}
		if entry.Kategori != "Iuran Warga" {
			t.Errorf("expected kategori 'Iuran Warga', got %q", entry.Kategori)
		}
		if entry.JenisTransaksi != entity.KindPemasukan {
			t.Errorf("expected pemasukan, got %s", entry.JenisTransaksi)
		}
		if entry.PihakKetiga != "Budi" {
			t.Errorf("expected the resident name, got %q", entry.PihakKetiga)
		}
		if !entry.Jumlah.Equal(decimal.NewFromInt(75000)) {
			t.Errorf("expected jumlah 75000, got %s", entry.Jumlah)
		}
		if entry.Periode != "2025-07" {
			t.Errorf("expected periode from the cycle date, got %q", entry.Periode)
		}
	})

	t.Run("re-running the import never double-counts", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), adminID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Imported != 0 || out.Skipped != 1 {
			t.Errorf("expected 0 imported / 1 skipped, got %d/%d", out.Imported, out.Skipped)
		}
		if len(ledgerRepo.entries) != 1 {
			t.Errorf("expected the ledger to still hold 1 entry, got %d", len(ledgerRepo.entries))
		}
	})
}

func TestExportReportUseCase_Execute(t *testing.T) {
	repo := newFakeLedgerRepo()
	seedEntry(repo, entity.KindPemasukan, 575000, "2025-07")
	seedEntry(repo, entity.KindPengeluaran, 200000, "2025-07")

	uc := NewExportReportUseCase(repo)
	out, err := uc.Execute(context.Background(), ExportReportInput{Periode: "2025-07"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FileName != "laporan-keuangan-2025-07.xlsx" {
		t.Errorf("unexpected file name %q", out.FileName)
	}
	if len(out.Content) == 0 {
		t.Error("expected a non-empty workbook")
	}
}
