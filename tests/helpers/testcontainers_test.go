package helpers

import (
	"testing"

	"github.com/localnerve/materialsdb/data"
	"github.com/stretchr/testify/assert"
)

func TestSplitStatements(t *testing.T) {
	script := `-- leading comment
CREATE TABLE a (id INT); -- trailing
INSERT INTO a VALUES ('x;y', "--not a comment");
GRANT ALL ON b.* TO 'u'@'%';`

	assert.Equal(t, []string{
		"CREATE TABLE a (id INT)",
		`INSERT INTO a VALUES ('x;y', "--not a comment")`,
		"GRANT ALL ON b.* TO 'u'@'%'",
	}, splitStatements(script))
}

func TestSplitStatementsEmbeddedScripts(t *testing.T) {
	tables := splitStatements(data.InitdbMariaDBTables)
	assert.NotEmpty(t, tables)
	for _, stmt := range tables {
		assert.NotContains(t, stmt, "--")
	}
	assert.Len(t, splitStatements(data.InitdbMariaDBPrivileges), 2)
}
