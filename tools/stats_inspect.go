package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"pomo-lab/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	user := flag.String("user", "", "Only show users whose ID starts with this value")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"User", "Minutes", "Hours", "Sessions"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	var totalMinutes, totalSessions int64
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(repositories.StatsPrefix + *user)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			userID := strings.TrimPrefix(string(item.Key()), repositories.StatsPrefix)
			err := item.Value(func(v []byte) error {
				record, err := repositories.DecodeRecord(v)
				if err != nil {
					// Keep scanning, one bad value must not hide the rest
					fmt.Printf("Error decoding key %s: %v\n", string(item.Key()), err)
					return nil
				}
				totalMinutes += record.TotalMinutes
				totalSessions += record.TotalSessions
				table.Append([]string{
					userID,
					strconv.FormatInt(record.TotalMinutes, 10),
					fmt.Sprintf("%.1f", float64(record.TotalMinutes)/60),
					strconv.FormatInt(record.TotalSessions, 10),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.SetFooter([]string{"Total", strconv.FormatInt(totalMinutes, 10),
		fmt.Sprintf("%.1f", float64(totalMinutes)/60), strconv.FormatInt(totalSessions, 10)})
	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
