package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-version"
)

// InfoTxtName is the summary file written into each run directory.
const InfoTxtName = "info.txt"

// Record ties the metadata of a chosen backup to the directories of the
// current run. Constructed once per run, never mutated.
type Record struct {
	BackupDirectory string
	OutputDirectory string
	Info
}

// fieldTable is the fixed mapping between the external field names used
// in info.txt (and Info.plist) and Record fields. Order here is the
// order the fields are written in.
var fieldTable = []struct {
	key string
	get func(r *Record) string
	set func(r *Record, v string) error
}{
	{"Backup Directory",
		func(r *Record) string { return r.BackupDirectory },
		func(r *Record, v string) error { r.BackupDirectory = v; return nil }},
	{"Build Version",
		func(r *Record) string { return r.BuildVersion },
		func(r *Record, v string) error { r.BuildVersion = v; return nil }},
	{"Device Name",
		func(r *Record) string { return r.DeviceName },
		func(r *Record, v string) error { r.DeviceName = v; return nil }},
	{"Display Name",
		func(r *Record) string { return r.DisplayName },
		func(r *Record, v string) error { r.DisplayName = v; return nil }},
	{"GUID",
		func(r *Record) string { return r.GUID },
		func(r *Record, v string) error { r.GUID = v; return nil }},
	{"ICCID",
		func(r *Record) string { return r.ICCID },
		func(r *Record, v string) error { r.ICCID = v; return nil }},
	{"IMEI",
		func(r *Record) string { return r.IMEI },
		func(r *Record, v string) error { r.IMEI = v; return nil }},
	{"IMEI 2",
		func(r *Record) string { return r.IMEI2 },
		func(r *Record, v string) error { r.IMEI2 = v; return nil }},
	{"Last Backup Date",
		func(r *Record) string {
			if r.LastBackupDate.IsZero() {
				return ""
			}
			return r.LastBackupDate.UTC().Format(TimestampFormat)
		},
		func(r *Record, v string) error {
			if v == "" {
				return nil
			}
			t, err := time.Parse(TimestampFormat, v)
			if err != nil {
				return fmt.Errorf("failed to parse Last Backup Date %q: %w", v, err)
			}
			r.LastBackupDate = t.UTC()
			return nil
		}},
	{"MEID",
		func(r *Record) string {
			if r.MEID == nil {
				return ""
			}
			return *r.MEID
		},
		func(r *Record, v string) error {
			if v != "" {
				r.MEID = &v
			}
			return nil
		}},
	{"Output Directory",
		func(r *Record) string { return r.OutputDirectory },
		func(r *Record, v string) error { r.OutputDirectory = v; return nil }},
	{"Phone Number",
		func(r *Record) string { return r.PhoneNumber },
		func(r *Record, v string) error { r.PhoneNumber = v; return nil }},
	{"Product Name",
		func(r *Record) string { return r.ProductName },
		func(r *Record, v string) error { r.ProductName = v; return nil }},
	{"Product Type",
		func(r *Record) string { return r.ProductType },
		func(r *Record, v string) error { r.ProductType = v; return nil }},
	{"Product Version",
		func(r *Record) string { return r.ProductVersion },
		func(r *Record, v string) error { r.ProductVersion = v; return nil }},
	{"Serial Number",
		func(r *Record) string { return r.SerialNumber },
		func(r *Record, v string) error { r.SerialNumber = v; return nil }},
	{"Target Identifier",
		func(r *Record) string { return r.TargetIdentifier },
		func(r *Record, v string) error { r.TargetIdentifier = v; return nil }},
	{"Unique Identifier",
		func(r *Record) string { return r.UniqueIdentifier },
		func(r *Record, v string) error { r.UniqueIdentifier = v; return nil }},
}

// MajorVersion derives the major iOS version from Product Version.
// ok is false when Product Version is absent or not version-shaped.
func (r *Record) MajorVersion() (int, bool) {
	if r.ProductVersion == "" {
		return 0, false
	}
	v, err := version.NewVersion(r.ProductVersion)
	if err != nil {
		return 0, false
	}
	return v.Segments()[0], true
}

// ToMap renders the record as external-key/value pairs. A nil MEID
// renders as the empty string.
func (r *Record) ToMap() map[string]string {
	m := make(map[string]string, len(fieldTable))
	for _, f := range fieldTable {
		m[f.key] = f.get(r)
	}
	return m
}

// FromMap builds a Record from external-key/value pairs. Unknown keys
// are rejected so a stale info.txt cannot silently lose data.
func FromMap(m map[string]string) (*Record, error) {
	byKey := make(map[string]func(*Record, string) error, len(fieldTable))
	for _, f := range fieldTable {
		byKey[f.key] = f.set
	}
	r := &Record{}
	for k, v := range m {
		set, ok := byKey[k]
		if !ok {
			return nil, fmt.Errorf("unknown field %q", k)
		}
		if err := set(r, v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Record Stringer, one "Key: Value" line per field in table order.
func (r *Record) String() string {
	var b strings.Builder
	for _, f := range fieldTable {
		fmt.Fprintf(&b, "%s: %s\n", f.key, f.get(r))
	}
	return b.String()
}

// WriteInfoTxt writes the info.txt summary into the run directory.
func (r *Record) WriteInfoTxt() error {
	path := filepath.Join(r.OutputDirectory, InfoTxtName)
	if err := os.WriteFile(path, []byte(r.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", InfoTxtName, err)
	}
	return nil
}
