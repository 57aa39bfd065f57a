package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type contact struct {
	ID    uint `gorm:"primaryKey"`
	Name  string
	Email string
	Phone string
	Score int
}

func setupQueryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&contact{}))
	require.NoError(t, db.Create([]contact{
		{Name: "Alice Martin", Email: "alice@mail.com", Phone: "5511", Score: 10},
		{Name: "Bob Stone", Email: "bob@corp.io", Phone: "7722", Score: 20},
		{Name: "Carla_Rey", Email: "carla@mail.com", Phone: "5599", Score: 30},
		{Name: "Dan 100%", Email: "dan@corp.io", Phone: "0000", Score: 40},
	}).Error)
	return db
}

func names(t *testing.T, db *gorm.DB, scopes ...Scope) []string {
	t.Helper()
	var rows []contact
	require.NoError(t, db.Model(&contact{}).Scopes(scopes...).Order("id").Find(&rows).Error)
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func TestContains(t *testing.T) {
	t.Run("blank term is inactive", func(t *testing.T) {
		assert.Nil(t, Contains("name", ""))
		assert.Nil(t, Contains("name", "   "))
	})

	t.Run("lower cases and escapes the term", func(t *testing.T) {
		c := Contains("name", "A_b%")
		require.NotNil(t, c)
		assert.Equal(t, `LOWER(name) LIKE ? ESCAPE '\'`, c.Expr)
		assert.Equal(t, []any{`%a\_b\%%`}, c.Args)
	})

	t.Run("surrounding spaces stay in the pattern", func(t *testing.T) {
		c := Contains("name", " Bob ")
		require.NotNil(t, c)
		assert.Equal(t, []any{"% bob %"}, c.Args)
	})
}

func TestOrAnd(t *testing.T) {
	t.Run("no active clause", func(t *testing.T) {
		assert.Nil(t, Or(nil, nil))
		assert.Nil(t, And())
	})

	t.Run("single clause is returned as is", func(t *testing.T) {
		c := Contains("name", "x")
		assert.Same(t, c, Or(nil, c, nil))
	})

	t.Run("folds active clauses in order", func(t *testing.T) {
		c := Or(Equal("a", 1, true), Equal("b", 2, false), Equal("c", 3, true))
		require.NotNil(t, c)
		assert.Equal(t, "(a = ?) OR (c = ?)", c.Expr)
		assert.Equal(t, []any{1, 3}, c.Args)
	})

	t.Run("within keeps args", func(t *testing.T) {
		c := Equal("x", 9, true).Within("id IN (SELECT id FROM t WHERE %s)")
		assert.Equal(t, "id IN (SELECT id FROM t WHERE x = ?)", c.Expr)
		assert.Equal(t, []any{9}, c.Args)
		assert.Nil(t, (*Clause)(nil).Within("%s"))
	})
}

func TestFilteringAgainstDatabase(t *testing.T) {
	db := setupQueryTestDB(t)

	t.Run("no filter matches everything", func(t *testing.T) {
		got := names(t, db, Where(Or(Contains("name", ""), Contains("email", " "))))
		assert.Len(t, got, 4)
	})

	t.Run("any active field can match", func(t *testing.T) {
		got := names(t, db, Where(Or(
			Contains("name", "BOB"),
			Contains("email", ""),
			Contains("phone", "559"),
		)))
		assert.Equal(t, []string{"Bob Stone", "Carla_Rey"}, got)
	})

	t.Run("blank fields never force a non match", func(t *testing.T) {
		got := names(t, db, Where(Or(Contains("name", ""), Contains("email", "mail.com"))))
		assert.Equal(t, []string{"Alice Martin", "Carla_Rey"}, got)
	})

	t.Run("metacharacters match literally", func(t *testing.T) {
		assert.Equal(t, []string{"Carla_Rey"}, names(t, db, Where(Contains("name", "_"))))
		assert.Equal(t, []string{"Dan 100%"}, names(t, db, Where(Contains("name", "0%"))))
	})

	t.Run("padded term is matched as given", func(t *testing.T) {
		assert.Equal(t, []string{"Alice Martin"}, names(t, db, Where(Contains("name", "e "))))
		assert.Equal(t, []string{"Bob Stone"}, names(t, db, Where(Contains("name", "bob "))))
		assert.Empty(t, names(t, db, Where(Contains("name", "Stone "))))
	})

	t.Run("no row matches", func(t *testing.T) {
		assert.Empty(t, names(t, db, Where(Contains("name", "zoe"))))
	})

	t.Run("conditional scopes are ANDed", func(t *testing.T) {
		got := names(t, db,
			WhereIf(true, "score >= ?", 20),
			WhereIf(false, "score <= ?", 0),
			WhereIf(true, "score <= ?", 30),
		)
		assert.Equal(t, []string{"Bob Stone", "Carla_Rey"}, got)
	})

	t.Run("text OR is ANDed with ranges", func(t *testing.T) {
		got := names(t, db,
			Where(Or(Contains("email", "corp.io"), Contains("name", "alice"))),
			WhereIf(true, "score >= ?", 20),
		)
		assert.Equal(t, []string{"Bob Stone", "Dan 100%"}, got)
	})
}
