// Package backup reads unencrypted iOS device backups from disk: the
// per-backup Info.plist metadata, the database catalogue, and the
// hashed-filename layout the backups store their databases in.
package backup

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blacktop/go-plist"
)

// InfoPlistName is the metadata file found inside every backup directory.
const InfoPlistName = "Info.plist"

// Info is the Info.plist struct
type Info struct {
	BuildVersion     string    `plist:"Build Version,omitempty" json:"build_version,omitempty"`
	DeviceName       string    `plist:"Device Name,omitempty" json:"device_name,omitempty"`
	DisplayName      string    `plist:"Display Name,omitempty" json:"display_name,omitempty"`
	GUID             string    `plist:"GUID,omitempty" json:"guid,omitempty"`
	ICCID            string    `plist:"ICCID,omitempty" json:"iccid,omitempty"`
	IMEI             string    `plist:"IMEI,omitempty" json:"imei,omitempty"`
	IMEI2            string    `plist:"IMEI 2,omitempty" json:"imei_2,omitempty"`
	LastBackupDate   time.Time `plist:"Last Backup Date,omitempty" json:"last_backup_date,omitempty"`
	MEID             *string   `plist:"MEID,omitempty" json:"meid,omitempty"`
	PhoneNumber      string    `plist:"Phone Number,omitempty" json:"phone_number,omitempty"`
	ProductName      string    `plist:"Product Name,omitempty" json:"product_name,omitempty"`
	ProductType      string    `plist:"Product Type,omitempty" json:"product_type,omitempty"`
	ProductVersion   string    `plist:"Product Version,omitempty" json:"product_version,omitempty"`
	SerialNumber     string    `plist:"Serial Number,omitempty" json:"serial_number,omitempty"`
	TargetIdentifier string    `plist:"Target Identifier,omitempty" json:"target_identifier,omitempty"`
	UniqueIdentifier string    `plist:"Unique Identifier,omitempty" json:"unique_identifier,omitempty"`
}

// ParseInfo parses an Info.plist (binary or XML)
func ParseInfo(data []byte) (*Info, error) {
	i := &Info{}
	if err := plist.NewDecoder(bytes.NewReader(data)).Decode(i); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", InfoPlistName, err)
	}
	return i, nil
}

// ReadInfo reads and parses the Info.plist inside a backup directory.
// A missing metadata file surfaces as a wrapped fs.ErrNotExist.
func ReadInfo(dir string) (*Info, error) {
	data, err := os.ReadFile(filepath.Join(dir, InfoPlistName))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s in %s: %w", InfoPlistName, dir, err)
	}
	return ParseInfo(data)
}
