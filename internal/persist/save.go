package persist

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DonovanMods/loadorderctl/internal/codec"
	"github.com/DonovanMods/loadorderctl/internal/config"
	"github.com/DonovanMods/loadorderctl/internal/domain"

	"github.com/google/uuid"
)

// Save serializes entries to disk per profile's persistence method
// (spec §4.5). Writes go through a temp-file-plus-rename so each
// individual file replace is atomic; ordering between the two files
// written per method is not.
func Save(profile *config.GameProfile, entries []domain.Entry) error {
	if profile.Method() == domain.TEXTFILE {
		return saveTextfile(profile, entries)
	}
	return saveTimestamp(profile, entries)
}

func saveTimestamp(profile *config.GameProfile, entries []domain.Entry) error {
	base := time.Now()
	for i, e := range entries {
		path := filepath.Join(profile.PluginsFolder, e.Name.String())
		t := base.Add(time.Duration(i) * domain.TimestampIncrementSeconds * time.Second)
		if err := os.Chtimes(path, t, t); err != nil {
			return fmt.Errorf("%w: setting timestamp on %s: %v", domain.ErrIO, e.Name, err)
		}
	}
	return saveActiveFile(profile, entries)
}

func saveTextfile(profile *config.GameProfile, entries []domain.Entry) error {
	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(e.Name.String())
		buf.WriteByte('\n')
	}
	if err := atomicWrite(profile.LoadOrderFile, buf.Bytes()); err != nil {
		return err
	}
	return saveActiveFile(profile, entries)
}

// saveActiveFile writes the active subset, one per line, OS-local
// encoding. TES3 entries are prefixed "GameFile<N>=" with N starting
// at 0 and contiguous; all other games just write the filename.
func saveActiveFile(profile *config.GameProfile, entries []domain.Entry) error {
	var buf bytes.Buffer
	n := 0
	for _, e := range entries {
		if !e.Active {
			continue
		}

		line := e.Name.String()
		if profile.GameID == domain.TES3 {
			line = fmt.Sprintf("GameFile%d=%s", n, line)
			n++
		}

		encoded, err := codec.FromUTF8(line)
		if err != nil {
			return fmt.Errorf("%w: encoding %s: %v", domain.ErrIO, e.Name, err)
		}
		buf.Write(encoded)
		buf.WriteByte('\n')
	}

	return atomicWrite(profile.ActivePluginsFile, buf.Bytes())
}

// atomicWrite writes data to a uniquely-named temp file alongside
// path, then renames it into place (spec §4.5; pattern grounded on the
// teacher's Downloader.Download temp-file-plus-rename).
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory for %s: %v", domain.ErrIO, path, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%s", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", domain.ErrIO, tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: renaming %s to %s: %v", domain.ErrIO, tmp, path, err)
	}

	return nil
}
