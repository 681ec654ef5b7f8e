package db

import (
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite" // pure go sqlite driver, registered as "sqlite"
)

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// SQLiteDialector opens path through the pure-Go driver with foreign keys enforced.
func SQLiteDialector(path string) gorm.Dialector {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "nutriplan.db"
	}
	return sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        sqliteDSN(path),
	}
}

func sqliteDSN(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + sqlitePragmas
}
