package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lakshmikanth26/new-job-journey/internal/constants"
)

func newStoreFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compass.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write store file: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	store := newStoreFile(t, `{"version":1,"data":{}}`)
	mgr := NewManager(store)

	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, constants.BackupFilePrefix) {
		t.Errorf("backup name %q missing prefix", name)
	}
	if !strings.HasSuffix(name, ".json") {
		t.Errorf("backup name %q should keep the store extension", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version":1,"data":{}}` {
		t.Errorf("backup content = %q", data)
	}
}

func TestCreateBackup_MissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nope.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing store")
	}
}

func TestCreateBackup_CollisionGetsUniqueName(t *testing.T) {
	store := newStoreFile(t, `{}`)
	mgr := NewManager(store)

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("first CreateBackup failed: %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("second CreateBackup failed: %v", err)
	}
	if first == second {
		t.Error("two backups in the same minute must not share a filename")
	}
}

func TestListBackups(t *testing.T) {
	store := newStoreFile(t, `{}`)
	mgr := NewManager(store)

	// Empty directory
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("expected non-zero backup size")
	}
}

func TestListBackups_IgnoresForeignFiles(t *testing.T) {
	store := newStoreFile(t, `{}`)
	mgr := NewManager(store)
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"random.txt", "compass-notatimestamp.json", "other-20250101-1200.json"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected foreign files ignored, got %+v", backups)
	}
}

func TestRotateBackups(t *testing.T) {
	store := newStoreFile(t, `{}`)
	mgr := NewManager(store)
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	// Seed more than MaxBackups with distinct timestamps
	for i := 0; i < constants.MaxBackups+3; i++ {
		name := fmt.Sprintf("%s202501%02d-1200.json", constants.BackupFilePrefix, i+1)
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if err := mgr.rotateBackups(); err != nil {
		t.Fatalf("rotateBackups failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}

	// The newest timestamps survive
	if !strings.Contains(backups[0].Path, fmt.Sprintf("202501%02d", constants.MaxBackups+3)) {
		t.Errorf("expected newest backup kept, got %s", backups[0].Path)
	}
}

func TestRestoreBackup(t *testing.T) {
	store := newStoreFile(t, `{"version":1,"data":{"customTasks":[]}}`)
	mgr := NewManager(store)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Mutate the live store, then restore
	if err := os.WriteFile(store, []byte(`{"version":1,"data":{"corrupting":"change"}}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	data, err := os.ReadFile(store)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"version":1,"data":{"customTasks":[]}}` {
		t.Errorf("restored content = %q", data)
	}

	// A safety copy of the pre-restore state exists
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a safety backup of the replaced store, got %d backups", len(backups))
	}
}

func TestRestoreBackup_RejectsCorruptFile(t *testing.T) {
	store := newStoreFile(t, `{}`)
	mgr := NewManager(store)

	bad := filepath.Join(filepath.Dir(store), "bad.json")
	if err := os.WriteFile(bad, []byte("this is not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.RestoreBackup(bad); err == nil {
		t.Error("expected corrupt backup rejected")
	}
}

func TestRestoreBackup_MissingFile(t *testing.T) {
	store := newStoreFile(t, `{}`)
	mgr := NewManager(store)

	if err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "ghost.json")); err == nil {
		t.Error("expected error for missing backup file")
	}
}
