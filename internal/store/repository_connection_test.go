package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/models"
)

func newTestConnectionRepo(t *testing.T) (*connectionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	repo := &connectionRepository{q: db, logger: logger.Nop()}
	return repo, mock, db
}

func TestIsShared_DefaultOpen(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	// no stored preference row: the category must read as shared
	mock.ExpectQuery("SELECT is_shared").
		WithArgs("profile-1", "user-2", models.SharingMedical).
		WillReturnError(sql.ErrNoRows)

	shared, err := repo.IsShared(context.Background(), "profile-1", "user-2", models.SharingMedical)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !shared {
		t.Fatal("expected missing preference to read as shared")
	}
}

func TestIsShared_ExplicitOff(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"is_shared"}).AddRow(false)
	mock.ExpectQuery("SELECT is_shared").
		WithArgs("profile-1", "user-2", models.SharingGiftIdea).
		WillReturnRows(rows)

	shared, err := repo.IsShared(context.Background(), "profile-1", "user-2", models.SharingGiftIdea)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shared {
		t.Fatal("expected stored is_shared=false to win over the default")
	}
}

func TestSeverConnection_Success(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	at := time.Now()
	mock.ExpectExec("UPDATE sync_connections").
		WithArgs("conn-1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SeverConnection(context.Background(), "conn-1", at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSeverConnection_AlreadySevered(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	// severed is terminal: the guarded UPDATE matches zero rows
	mock.ExpectExec("UPDATE sync_connections").
		WithArgs("conn-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SeverConnection(context.Background(), "conn-1", time.Now())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetConnection_Success(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	created := time.Now()
	rows := sqlmock.NewRows([]string{
		"connection_id", "status",
		"account_a", "user_a", "source_profile_a", "synced_profile_a",
		"account_b", "user_b", "source_profile_b", "synced_profile_b",
		"created_at", "severed_at",
	}).AddRow(
		"conn-1", "active",
		"acc-a", "user-a", "src-a", "copy-of-b",
		"acc-b", "user-b", "src-b", "copy-of-a",
		created, nil,
	)

	mock.ExpectQuery("SELECT (.+) FROM sync_connections").
		WithArgs("conn-1").
		WillReturnRows(rows)

	connection, err := repo.GetConnection(context.Background(), "conn-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if connection.Status != models.ConnectionActive {
		t.Errorf("expected active status, got %s", connection.Status)
	}
	if connection.SideB.SyncedProfileID != "copy-of-a" {
		t.Errorf("unexpected side B synced profile: %s", connection.SideB.SyncedProfileID)
	}

	opposite, ok := connection.OppositeSide("user-a")
	if !ok || opposite.UserID != "user-b" {
		t.Errorf("expected opposite side user-b, got %+v (ok=%v)", opposite, ok)
	}
}

func TestListMappingsByConnection(t *testing.T) {
	repo, mock, db := newTestConnectionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"connection_id", "source_detail_id", "synced_detail_id"}).
		AddRow("conn-1", "detail-1", "detail-1-copy").
		AddRow("conn-1", "detail-2", "detail-2-copy")

	mock.ExpectQuery("SELECT (.+) FROM detail_sync_mappings").
		WithArgs("conn-1").
		WillReturnRows(rows)

	mappings, err := repo.ListMappingsByConnection(context.Background(), "conn-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mappings) != 2 {
		t.Fatalf("expected 2 mappings, got %d", len(mappings))
	}
	if mappings[0].SyncedDetailID != "detail-1-copy" {
		t.Errorf("unexpected synced detail id: %s", mappings[0].SyncedDetailID)
	}
}
