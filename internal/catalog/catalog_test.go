package catalog

import "testing"

func TestBackupChartKnownCode(t *testing.T) {
	t.Parallel()

	rows := BackupChart("za")
	if len(rows) != 5 {
		t.Fatalf("expected 5 backup rows, got %d", len(rows))
	}
	if rows[0].Title != "Mnike" {
		t.Fatalf("unexpected first backup track: %s", rows[0].Title)
	}
}

func TestBackupChartUnknownCodeUsesDefault(t *testing.T) {
	t.Parallel()

	rows := BackupChart("xx")
	want := BackupChart("ng")
	if len(rows) != len(want) {
		t.Fatalf("expected default backup, got %d rows", len(rows))
	}
	if rows[0].Title != want[0].Title {
		t.Fatalf("expected default backup track %s, got %s", want[0].Title, rows[0].Title)
	}
}

func TestBackupChartReturnsCopy(t *testing.T) {
	t.Parallel()

	rows := BackupChart("ng")
	rows[0].Title = "mutated"
	if again := BackupChart("ng"); again[0].Title == "mutated" {
		t.Fatal("BackupChart exposed shared backing storage")
	}
}

func TestFlagForGeo(t *testing.T) {
	t.Parallel()

	cat := Default()
	if flag := cat.FlagForGeo("KE"); flag != "🇰🇪" {
		t.Fatalf("unexpected flag for KE: %q", flag)
	}
	if flag := cat.FlagForGeo("FR"); flag != "" {
		t.Fatalf("expected empty flag for untracked geo, got %q", flag)
	}
}

func TestFallbackRisingAllPositive(t *testing.T) {
	t.Parallel()

	list := FallbackRising()
	if len(list) == 0 || len(list) > 6 {
		t.Fatalf("fallback rising list has %d entries", len(list))
	}
	for _, entry := range list {
		if len(entry.Change) == 0 || entry.Change[0] != '+' {
			t.Errorf("fallback change %q is not positive", entry.Change)
		}
	}
}
