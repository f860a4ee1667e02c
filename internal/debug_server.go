package internal

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"pomo-lab/repositories"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	UserID   string
	Minutes  int64
	Sessions int64
	Detail   string
}

type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// NewInspectHandler renders the stats records stored in Badger along with
// live counters from statsProvider. ?prefix= narrows the users shown.
func NewInspectHandler(db *badger.DB, statsProvider StatsProvider) http.Handler {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		keyPrefix := []byte(repositories.StatsPrefix + prefix)
		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek(keyPrefix); it.ValidForPrefix(keyPrefix); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, toRow(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})
}

func toRow(key string, val []byte) InspectRow {
	row := InspectRow{UserID: strings.TrimPrefix(key, repositories.StatsPrefix)}
	record, err := repositories.DecodeRecord(val)
	if err != nil {
		row.Detail = "undecodable: " + err.Error()
		return row
	}
	row.Minutes = record.TotalMinutes
	row.Sessions = record.TotalSessions
	return row
}
