package cache

// schemaSQL defines the SQLite schema for the render cache: one row per
// content-addressed translation unit, value is that file's entity subtree
// as serialized by entity.Marshal (no rendered Markdown is stored).
const schemaSQL = `
CREATE TABLE IF NOT EXISTS renders (
    key    TEXT PRIMARY KEY,
    render BLOB NOT NULL
);
`

func (c *Cache) initSchema() error {
	_, err := c.db.Exec(schemaSQL)
	return err
}
