package vulnlib

import (
	"context"
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/xerrors"
)

const recordTable = `CREATE TABLE IF NOT EXISTS records (
			"ID" INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
			"Hash" TEXT UNIQUE,
			"CVEID" TEXT,
			"Version" TEXT,
			"Vector" TEXT,
			"Score" REAL,
			"Severity" TEXT,
			"Source" TEXT,
			"PublishDate" TEXT);`

func (cli *Client) Init() error {

	if !exists(cli.Store) {
		err := mkFolder(cli.Store)

		if err != nil {
			log.Printf("failed to create folder, error: %v", err)
			return err
		}
	}

	db, err := sql.Open("sqlite3", cli.Settings.Database)
	if err != nil {
		return xerrors.Errorf("failed to open %s: %w", cli.Settings.Database, err)
	}

	if _, err = db.Exec(recordTable); err != nil {
		db.Close()
		return xerrors.Errorf("failed to create table: %w", err)
	}

	cli.DB = db
	return nil
}

func (cli *Client) Close() error {
	if cli.DB == nil {
		return nil
	}
	return cli.DB.Close()
}

// Reset removes the database and the update log
func (cli *Client) Reset() {
	_ = cli.Close()
	cli.DB = nil

	_ = os.Remove(cli.Settings.Database)
	_ = os.Remove(dateFile(cli.Store))
}

// update stores records, a record already present is skipped.
// It returns the number of new rows.
func (cli *Client) update(ctx context.Context, records []*Record) (int, error) {

	tx, err := cli.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO records
					  ("Hash", "CVEID", "Version", "Vector", "Score", "Severity", "Source", "PublishDate")
                       VALUES
                      (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	defer stmt.Close()

	added := 0
	for _, r := range records {
		hash := md5.Sum([]byte(fmt.Sprintf("%s%s%s", r.CVEID, r.Vector, r.Source)))

		res, err := stmt.ExecContext(ctx, hex.EncodeToString(hash[:]), r.CVEID,
			r.Version, r.Vector, r.Score,
			r.Severity, r.Source, r.PublishDate)
		if err != nil {
			tx.Rollback()
			return 0, xerrors.Errorf("failed to store %s: %w", r.CVEID, err)
		}

		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}

	return added, tx.Commit()
}

func (cli *Client) QueryByCVEID(ctx context.Context, cveid string) ([]*Record, error) {
	return cli.query(ctx, `SELECT "CVEID", "Version", "Vector", "Score", "Severity", "Source", "PublishDate"
		FROM records WHERE cveid = ? ORDER BY "ID"`, cveid)
}

// Records returns every stored record in insertion order
func (cli *Client) Records(ctx context.Context) ([]*Record, error) {
	return cli.query(ctx, `SELECT "CVEID", "Version", "Vector", "Score", "Severity", "Source", "PublishDate"
		FROM records ORDER BY "ID"`)
}

func (cli *Client) Count(ctx context.Context) (int, error) {
	var n int
	err := cli.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n)
	return n, err
}

func (cli *Client) query(ctx context.Context, sqlRow string, args ...interface{}) ([]*Record, error) {

	records := []*Record{}

	rows, err := cli.DB.QueryContext(ctx, sqlRow, args...)
	if err != nil {
		return records, err
	}

	defer rows.Close()

	for rows.Next() {
		r := &Record{}
		err = rows.Scan(&r.CVEID, &r.Version, &r.Vector,
			&r.Score, &r.Severity, &r.Source, &r.PublishDate)

		if err != nil {
			log.Printf("failed to scan record, error: %v", err)
			continue
		}

		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		return records, err
	}

	return records, nil
}
