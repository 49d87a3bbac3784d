package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/go-sql-driver/mysql"

	"tcm/internal/domain"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// MySQLCatalog reads test cases from a test-management database table
// with at least the columns id and name.
type MySQLCatalog struct {
	dsn   string
	table string
}

// NewMySQLCatalog creates a new MySQLCatalog
func NewMySQLCatalog(dsn, table string) *MySQLCatalog {
	return &MySQLCatalog{dsn: dsn, table: table}
}

// Load queries all test cases ordered by id
func (mc *MySQLCatalog) Load(ctx context.Context) ([]domain.TestCase, error) {
	if !isValidTableName(mc.table) {
		return nil, fmt.Errorf("invalid catalog table name: %q", mc.table)
	}

	db, err := sql.Open("mysql", mc.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}

	return queryCases(ctx, db, mc.table)
}

func queryCases(ctx context.Context, db *sql.DB, table string) ([]domain.TestCase, error) {
	query := fmt.Sprintf("SELECT CAST(id AS CHAR), name FROM `%s` ORDER BY id", table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query test cases: %w", err)
	}
	defer rows.Close()

	var cases []domain.TestCase
	for rows.Next() {
		var tc domain.TestCase
		if err := rows.Scan(&tc.ID, &tc.Name); err != nil {
			return nil, fmt.Errorf("scan test case: %w", err)
		}
		cases = append(cases, tc)
	}
	return cases, rows.Err()
}

// isValidTableName only allows plain identifiers since the name is interpolated into SQL
func isValidTableName(name string) bool {
	return tableName.MatchString(name)
}
