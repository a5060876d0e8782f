package backup

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func testRecord() *Record {
	return &Record{
		BackupDirectory: "backup-directory",
		OutputDirectory: "output-directory",
		Info: Info{
			BuildVersion:     "20D47",
			DeviceName:       "device-name",
			DisplayName:      "display-name",
			GUID:             "fake-guid",
			ICCID:            "fake-iccid",
			IMEI:             "fake-imei",
			IMEI2:            "fake-imei-2",
			LastBackupDate:   time.Date(2022, 3, 11, 1, 47, 3, 0, time.UTC),
			PhoneNumber:      "+353 (01) 234 5678",
			ProductName:      "iPhone 14 Pro Max",
			ProductType:      "iPhone15,3",
			ProductVersion:   "16.3",
			SerialNumber:     "fake_serial",
			TargetIdentifier: "fake-target-identifier",
			UniqueIdentifier: "fake-unique-identifier",
		},
	}
}

func TestMajorVersion(t *testing.T) {
	tests := []struct {
		version string
		want    int
		wantOK  bool
	}{
		{"16.3", 16, true},
		{"9.3.5", 9, true},
		{"10.0", 10, true},
		{"", 0, false},
		{"not-a-version", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			r := &Record{Info: Info{ProductVersion: tt.version}}
			got, ok := r.MajorVersion()
			if ok != tt.wantOK {
				t.Fatalf("MajorVersion(%q) ok = %v, want %v", tt.version, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("MajorVersion(%q) = %d, want %d", tt.version, got, tt.want)
			}
		})
	}
}

func TestRecordToMap(t *testing.T) {
	got := testRecord().ToMap()
	want := map[string]string{
		"Backup Directory":  "backup-directory",
		"Build Version":     "20D47",
		"Device Name":       "device-name",
		"Display Name":      "display-name",
		"GUID":              "fake-guid",
		"ICCID":             "fake-iccid",
		"IMEI":              "fake-imei",
		"IMEI 2":            "fake-imei-2",
		"Last Backup Date":  "2022-03-11 01:47:03",
		"MEID":              "",
		"Output Directory":  "output-directory",
		"Phone Number":      "+353 (01) 234 5678",
		"Product Name":      "iPhone 14 Pro Max",
		"Product Type":      "iPhone15,3",
		"Product Version":   "16.3",
		"Serial Number":     "fake_serial",
		"Target Identifier": "fake-target-identifier",
		"Unique Identifier": "fake-unique-identifier",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap() = %v, want %v", got, want)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	r := testRecord()
	got, err := FromMap(r.ToMap())
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	if !reflect.DeepEqual(got.ToMap(), r.ToMap()) {
		t.Errorf("round trip mismatch:\ngot  %v\nwant %v", got.ToMap(), r.ToMap())
	}
	if !got.LastBackupDate.Equal(r.LastBackupDate) {
		t.Errorf("LastBackupDate = %v, want %v", got.LastBackupDate, r.LastBackupDate)
	}
	if got.MEID != nil {
		t.Errorf("MEID = %v, want nil", *got.MEID)
	}
}

func TestFromMapRejectsUnknownField(t *testing.T) {
	if _, err := FromMap(map[string]string{"Bogus Field": "x"}); err == nil {
		t.Error("FromMap() accepted an unknown field")
	}
}

func TestRecordString(t *testing.T) {
	out := testRecord().String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(fieldTable) {
		t.Fatalf("String() has %d lines, want %d", len(lines), len(fieldTable))
	}
	if lines[0] != "Backup Directory: backup-directory" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("String() output missing trailing newline")
	}
	if !strings.Contains(out, "Last Backup Date: 2022-03-11 01:47:03\n") {
		t.Errorf("Last Backup Date rendered wrong:\n%s", out)
	}
	if !strings.Contains(out, "MEID: \n") {
		t.Errorf("nil MEID rendered wrong:\n%s", out)
	}
}
