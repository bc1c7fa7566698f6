package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/selahapp/selah/internal/constants"
	"github.com/selahapp/selah/internal/models"
)

// Archive persists journal entries between sessions, keyed by profile. The
// scheduling core treats it as an external collaborator: the in-memory Store
// is the source of truth while a session runs.
type Archive interface {
	List(profile string) ([]models.JournalEntry, error)
	Store(profile string, entry models.JournalEntry) error
	Delete(profile string, entry models.JournalEntry) error
}

// DiskArchive stores one JSON document per entry under
// <base>/<profile>/<date>/<id>.
type DiskArchive struct {
	d *diskv.Diskv
}

func NewDiskArchive(basePath string) *DiskArchive {
	return &DiskArchive{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}
}

func (a *DiskArchive) List(profile string) ([]models.JournalEntry, error) {
	prefix := profile + "/"
	var entries []models.JournalEntry
	for key := range a.d.Keys(nil) {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		val, err := a.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		var e models.JournalEntry
		if err := json.Unmarshal(val, &e); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (a *DiskArchive) Store(profile string, entry models.JournalEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("archive: entry id required")
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return a.d.Write(toKey(profile, entry), data)
}

func (a *DiskArchive) Delete(profile string, entry models.JournalEntry) error {
	return a.d.Erase(toKey(profile, entry))
}

// toKey makes `profile/date/id`
func toKey(profile string, e models.JournalEntry) string {
	return fmt.Sprintf("%s/%s/%s", profile, e.Timestamp.Format(constants.DateFormat), e.ID)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.Join(append(pathKey.Path, pathKey.FileName), "/")
}
