package backup

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testInfoPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Build Version</key>
	<string>20D47</string>
	<key>Device Name</key>
	<string>my iPhone</string>
	<key>Display Name</key>
	<string>my iPhone</string>
	<key>GUID</key>
	<string>ABCDEF0123456789</string>
	<key>ICCID</key>
	<string>89353001234567890123</string>
	<key>IMEI</key>
	<string>356728110000000</string>
	<key>Last Backup Date</key>
	<date>2022-03-11T01:47:03Z</date>
	<key>Phone Number</key>
	<string>+353 (01) 234 5678</string>
	<key>Product Name</key>
	<string>iPhone 14 Pro Max</string>
	<key>Product Type</key>
	<string>iPhone15,3</string>
	<key>Product Version</key>
	<string>16.3</string>
	<key>Serial Number</key>
	<string>F17XX0XXXXXX</string>
	<key>Target Identifier</key>
	<string>46063E61-DC9F-40A2-888A-880FD5BA596A</string>
	<key>Unique Identifier</key>
	<string>46063E61-DC9F-40A2-888A-880FD5BA596A</string>
</dict>
</plist>
`

func writeTestBackupDir(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, InfoPlistName), []byte(testInfoPlist), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestParseInfo(t *testing.T) {
	info, err := ParseInfo([]byte(testInfoPlist))
	if err != nil {
		t.Fatalf("ParseInfo() error = %v", err)
	}
	if info.DeviceName != "my iPhone" {
		t.Errorf("DeviceName = %q", info.DeviceName)
	}
	if info.ProductVersion != "16.3" {
		t.Errorf("ProductVersion = %q", info.ProductVersion)
	}
	if want := time.Date(2022, 3, 11, 1, 47, 3, 0, time.UTC); !info.LastBackupDate.Equal(want) {
		t.Errorf("LastBackupDate = %v, want %v", info.LastBackupDate, want)
	}
	// absent keys stay absent, they do not fail the parse
	if info.MEID != nil {
		t.Errorf("MEID = %v, want nil", *info.MEID)
	}
	if info.IMEI2 != "" {
		t.Errorf("IMEI2 = %q, want empty", info.IMEI2)
	}
}

func TestReadInfoMissing(t *testing.T) {
	_, err := ReadInfo(t.TempDir())
	if err == nil {
		t.Fatal("ReadInfo() should fail without an Info.plist")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadInfo() error = %v, want fs.ErrNotExist", err)
	}
}

func TestCandidates(t *testing.T) {
	root := t.TempDir()
	writeTestBackupDir(t, root, "8A8269F1-BFC9-4828-9831-9A1ECD484F8C")
	writeTestBackupDir(t, root, "46063E61-DC9F-40A2-888A-880FD5BA596A")
	// no Info.plist means not a candidate
	if err := os.MkdirAll(filepath.Join(root, "not-a-backup"), 0750); err != nil {
		t.Fatal(err)
	}
	// plain files are ignored
	if err := os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	cands, err := Candidates(root)
	if err != nil {
		t.Fatalf("Candidates() error = %v", err)
	}
	if len(cands) != 2 {
		t.Fatalf("Candidates() returned %d, want 2", len(cands))
	}
	// sorted by path for stable numbering
	if filepath.Base(cands[0].Path) != "46063E61-DC9F-40A2-888A-880FD5BA596A" {
		t.Errorf("first candidate = %q", cands[0].Path)
	}
	if cands[0].Info.DeviceName != "my iPhone" {
		t.Errorf("candidate Info not populated: %+v", cands[0].Info)
	}
}

func TestCandidatesMissingRoot(t *testing.T) {
	if _, err := Candidates(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Candidates() should fail for a missing root")
	}
}
