package storage

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMySQLStoreEnsuresTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS app_state").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := NewMySQLStore(db); err != nil {
		t.Fatalf("NewMySQLStore error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMySQLStoreLoadMissingKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT record_value FROM app_state").
		WithArgs(BookingKey).
		WillReturnRows(sqlmock.NewRows([]string{"record_value"}))

	s := &MySQLStore{DB: db}
	data, ok, err := s.Load(BookingKey)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if ok || data != nil {
		t.Fatalf("missing key should report absent, got ok=%v data=%q", ok, data)
	}
}

func TestMySQLStoreSaveAndLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	payload := `{"currentBooking":null,"bookings":[]}`

	mock.ExpectExec("INSERT INTO app_state").
		WithArgs(BookingKey, payload).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT record_value FROM app_state").
		WithArgs(BookingKey).
		WillReturnRows(sqlmock.NewRows([]string{"record_value"}).AddRow(payload))

	s := &MySQLStore{DB: db}
	if err := s.Save(BookingKey, []byte(payload)); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	data, ok, err := s.Load(BookingKey)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !ok || string(data) != payload {
		t.Fatalf("round-trip mismatch: ok=%v data=%s", ok, data)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMySQLStoreDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM app_state").
		WithArgs(AuthKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := &MySQLStore{DB: db}
	if err := s.Delete(AuthKey); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
