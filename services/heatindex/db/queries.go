package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type CreateIssueParams struct {
	Period    string
	Createdat int64
}

const createIssue = `
INSERT INTO issue (period, createdat) VALUES (?, ?)
`

func (q *Queries) CreateIssue(ctx context.Context, params CreateIssueParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createIssue, params.Period, params.Createdat)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

type CreateIssueNameParams struct {
	IssueID int64
	Name    string
}

const createIssueName = `
INSERT INTO issue_name (issueid, name) VALUES (?, ?)
`

func (q *Queries) CreateIssueName(ctx context.Context, params CreateIssueNameParams) error {
	_, err := q.db.ExecContext(ctx, createIssueName, params.IssueID, params.Name)
	return err
}

const latestIssueNames = `
SELECT issue_name.name
FROM issue_name
JOIN issue ON issue.id = issue_name.issueid
WHERE issue.id = (SELECT id FROM issue ORDER BY createdat DESC, id DESC LIMIT 1)
ORDER BY issue_name.rowid
`

// LatestIssueNames returns the entry names of the most recent issue,
// in the order they were saved. An empty database yields an empty
// list, not an error.
func (q *Queries) LatestIssueNames(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, latestIssueNames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
