// Package store provides SQLite-based festival state storage.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/soundfield/festsim/internal/festival"
)

// DB wraps a SQLite connection for festival state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS festivals (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		budget REAL NOT NULL,
		reputation INTEGER NOT NULL,
		days_remaining INTEGER NOT NULL,
		venue_capacity INTEGER NOT NULL,
		marketing_budget REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS artists (
		id INTEGER PRIMARY KEY,
		festival_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		genre TEXT NOT NULL,
		popularity INTEGER NOT NULL,
		fee REAL NOT NULL,
		performance_duration INTEGER NOT NULL,
		stage_requirements TEXT NOT NULL,
		performance_slot TEXT NOT NULL,
		special_requests_json TEXT NOT NULL,
		friends_json TEXT NOT NULL,
		conflicts_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS vendors (
		id INTEGER PRIMARY KEY,
		festival_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		specialty TEXT NOT NULL,
		quality INTEGER NOT NULL,
		cost REAL NOT NULL,
		revenue REAL NOT NULL,
		placement_location TEXT NOT NULL,
		alcohol_license INTEGER NOT NULL,
		local_sourcing INTEGER NOT NULL,
		sustainability_rating INTEGER NOT NULL,
		menu_json TEXT NOT NULL,
		specialties_json TEXT NOT NULL,
		allergy_json TEXT NOT NULL,
		relationships_json TEXT NOT NULL,
		conflicts_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS day_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		festival_id INTEGER NOT NULL,
		days_remaining INTEGER NOT NULL,
		weather TEXT NOT NULL,
		budget REAL NOT NULL,
		reputation INTEGER NOT NULL,
		events_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sim_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_artists_festival ON artists(festival_id);
	CREATE INDEX IF NOT EXISTS idx_vendors_festival ON vendors(festival_id);
	CREATE INDEX IF NOT EXISTS idx_day_log_festival ON day_log(festival_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveFestival writes the full festival snapshot (full replace).
func (db *DB) SaveFestival(f *festival.Festival) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM festivals WHERE id = ?", f.ID); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM artists WHERE festival_id = ?", f.ID); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM vendors WHERE festival_id = ?", f.ID); err != nil {
		return err
	}

	_, err = tx.Exec(`INSERT INTO festivals
		(id, name, location, budget, reputation, days_remaining, venue_capacity, marketing_budget)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.Name, f.Location, f.Budget, f.Reputation,
		f.DaysRemaining, f.VenueCapacity, f.MarketingBudget,
	)
	if err != nil {
		return fmt.Errorf("insert festival %d: %w", f.ID, err)
	}

	stmt, err := tx.Preparex(`INSERT INTO artists
		(id, festival_id, name, genre, popularity, fee, performance_duration,
		 stage_requirements, performance_slot, special_requests_json,
		 friends_json, conflicts_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range f.Artists {
		reqJSON, _ := json.Marshal(a.SpecialRequests)
		friendsJSON, _ := json.Marshal(a.FriendsWith)
		conflictsJSON, _ := json.Marshal(a.ConflictsWith)

		_, err := stmt.Exec(
			a.ID, f.ID, a.Name, a.Genre, a.Popularity, a.Fee,
			a.PerformanceDuration, a.StageRequirements, a.PerformanceSlot,
			string(reqJSON), string(friendsJSON), string(conflictsJSON),
		)
		if err != nil {
			return fmt.Errorf("insert artist %d: %w", a.ID, err)
		}
	}

	vstmt, err := tx.Preparex(`INSERT INTO vendors
		(id, festival_id, name, specialty, quality, cost, revenue,
		 placement_location, alcohol_license, local_sourcing, sustainability_rating,
		 menu_json, specialties_json, allergy_json, relationships_json, conflicts_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer vstmt.Close()

	for _, v := range f.Vendors {
		menuJSON, _ := json.Marshal(v.MenuItems)
		specJSON, _ := json.Marshal(v.AdvancedSpecialties)
		allergyJSON, _ := json.Marshal(v.AllergySupport)
		relJSON, _ := json.Marshal(v.Relationships)
		conflictsJSON, _ := json.Marshal(v.Conflicts)

		_, err := vstmt.Exec(
			v.ID, f.ID, v.Name, v.Specialty, v.Quality, v.Cost, v.Revenue,
			v.PlacementLocation, boolInt(v.AlcoholLicense), boolInt(v.LocalSourcing),
			v.SustainabilityRating,
			string(menuJSON), string(specJSON), string(allergyJSON),
			string(relJSON), string(conflictsJSON),
		)
		if err != nil {
			return fmt.Errorf("insert vendor %d: %w", v.ID, err)
		}
	}

	return tx.Commit()
}

// LoadFestival reads a festival snapshot back, including its artists and
// vendors. Returns festival.ErrNotFound when no row exists.
func (db *DB) LoadFestival(id int64) (*festival.Festival, error) {
	var f festival.Festival
	err := db.conn.Get(&f,
		`SELECT id, name, location, budget, reputation, days_remaining,
		        venue_capacity, marketing_budget
		 FROM festivals WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, festival.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load festival %d: %w", id, err)
	}

	type artistRow struct {
		festival.Artist
		SpecialRequestsJSON string `db:"special_requests_json"`
		FriendsJSON         string `db:"friends_json"`
		ConflictsJSON       string `db:"conflicts_json"`
	}
	var arows []artistRow
	err = db.conn.Select(&arows,
		`SELECT id, festival_id, name, genre, popularity, fee,
		        performance_duration, stage_requirements, performance_slot,
		        special_requests_json, friends_json, conflicts_json
		 FROM artists WHERE festival_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("load artists: %w", err)
	}
	for _, row := range arows {
		a := row.Artist
		json.Unmarshal([]byte(row.SpecialRequestsJSON), &a.SpecialRequests)
		json.Unmarshal([]byte(row.FriendsJSON), &a.FriendsWith)
		json.Unmarshal([]byte(row.ConflictsJSON), &a.ConflictsWith)
		f.Artists = append(f.Artists, &a)
	}

	type vendorRow struct {
		festival.Vendor
		MenuJSON          string `db:"menu_json"`
		SpecialtiesJSON   string `db:"specialties_json"`
		AllergyJSON       string `db:"allergy_json"`
		RelationshipsJSON string `db:"relationships_json"`
		ConflictsJSON     string `db:"conflicts_json"`
	}
	var vrows []vendorRow
	err = db.conn.Select(&vrows,
		`SELECT id, festival_id, name, specialty, quality, cost, revenue,
		        placement_location, alcohol_license, local_sourcing,
		        sustainability_rating, menu_json, specialties_json,
		        allergy_json, relationships_json, conflicts_json
		 FROM vendors WHERE festival_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("load vendors: %w", err)
	}
	for _, row := range vrows {
		v := row.Vendor
		json.Unmarshal([]byte(row.MenuJSON), &v.MenuItems)
		json.Unmarshal([]byte(row.SpecialtiesJSON), &v.AdvancedSpecialties)
		json.Unmarshal([]byte(row.AllergyJSON), &v.AllergySupport)
		json.Unmarshal([]byte(row.RelationshipsJSON), &v.Relationships)
		json.Unmarshal([]byte(row.ConflictsJSON), &v.Conflicts)
		f.Vendors = append(f.Vendors, &v)
	}

	return &f, nil
}

// AppendDayLog records one completed simulation day.
func (db *DB) AppendDayLog(festivalID int64, day festival.DaySummary) error {
	eventsJSON, _ := json.Marshal(day.Events)
	_, err := db.conn.Exec(
		`INSERT INTO day_log (festival_id, days_remaining, weather, budget, reputation, events_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		festivalID, day.DaysRemaining, day.Weather, day.Budget, day.Reputation,
		string(eventsJSON),
	)
	return err
}

// RecentDays returns the most recent N day log entries for a festival.
func (db *DB) RecentDays(festivalID int64, limit int) ([]festival.DaySummary, error) {
	rows, err := db.conn.Queryx(
		`SELECT days_remaining, weather, budget, reputation, events_json
		 FROM day_log WHERE festival_id = ? ORDER BY id DESC LIMIT ?`,
		festivalID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []festival.DaySummary
	for rows.Next() {
		var d festival.DaySummary
		var eventsJSON string
		if err := rows.Scan(&d.DaysRemaining, &d.Weather, &d.Budget, &d.Reputation, &eventsJSON); err != nil {
			return nil, err
		}
		json.Unmarshal([]byte(eventsJSON), &d.Events)
		days = append(days, d)
	}
	return days, rows.Err()
}

// SaveMeta stores a key-value pair in simulation metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO sim_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM sim_meta WHERE key = ?", key)
	return value, err
}

// SaveSnapshot performs a full save of a festival plus bookkeeping metadata.
func (db *DB) SaveSnapshot(f *festival.Festival) error {
	slog.Info("saving festival state",
		"festival", f.ID, "artists", len(f.Artists), "vendors", len(f.Vendors))

	if err := db.SaveFestival(f); err != nil {
		return fmt.Errorf("save festival: %w", err)
	}
	if err := db.SaveMeta("last_festival_id", fmt.Sprintf("%d", f.ID)); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}

	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
