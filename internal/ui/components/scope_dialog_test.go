package components

import (
	"reflect"
	"testing"

	"github.com/tagpilot/tagpilot/internal/models"
	"github.com/tagpilot/tagpilot/internal/ui/theme"
)

func TestScopeDialogGetScope(t *testing.T) {
	sd := NewScopeDialog(theme.DefaultTheme(), models.Scope{})
	sd.Accounts = "123456789012, 210987654321"
	sd.Regions = " us-east-1 "
	sd.Services = ""

	got := sd.GetScope()
	if !reflect.DeepEqual(got.Accounts, []string{"123456789012", "210987654321"}) {
		t.Errorf("Accounts = %v", got.Accounts)
	}
	if !reflect.DeepEqual(got.Regions, []string{"us-east-1"}) {
		t.Errorf("Regions = %v", got.Regions)
	}
	if got.Services != nil {
		t.Errorf("Services = %v, want nil for empty field", got.Services)
	}
}

func TestScopeDialogSeedsFromCurrentScope(t *testing.T) {
	current := models.Scope{
		Accounts: []string{"123456789012"},
		Services: []string{"s3", "ec2"},
	}
	sd := NewScopeDialog(theme.DefaultTheme(), current)

	if sd.Accounts != "123456789012" {
		t.Errorf("Accounts field = %q", sd.Accounts)
	}
	if sd.Services != "s3, ec2" {
		t.Errorf("Services field = %q", sd.Services)
	}
}

func TestScopeDialogFieldWrapAround(t *testing.T) {
	sd := NewScopeDialog(theme.DefaultTheme(), models.Scope{})
	sd.ManualMode = true

	sd.MoveSelection(-1)
	if sd.ActiveField != 2 {
		t.Errorf("ActiveField = %d, want wrap to 2", sd.ActiveField)
	}
	sd.MoveSelection(1)
	if sd.ActiveField != 0 {
		t.Errorf("ActiveField = %d, want wrap to 0", sd.ActiveField)
	}
}
