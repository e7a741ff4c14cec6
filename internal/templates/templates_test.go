package templates_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quez2777/hodos-360-website/internal/templates"
)

func TestDefaultLibraryHasAllNames(t *testing.T) {
	lib, err := templates.NewDefault()
	require.NoError(t, err)

	names := []string{
		templates.CommWelcomeEmail,
		templates.CommAppointmentReminder,
		templates.CommDocumentRequest,
		templates.CommCaseUpdate,
		templates.CommInvoice,
		templates.CommThankYou,
		templates.ContractBase,
	}
	for _, name := range names {
		assert.True(t, lib.Has(name), "missing template %q", name)
	}
	assert.False(t, lib.Has("comm_unknown"))
}

func TestRenderInterpolatesCommData(t *testing.T) {
	lib, err := templates.NewDefault()
	require.NoError(t, err)

	out, err := lib.Render(templates.CommWelcomeEmail, templates.CommData{
		Recipient:   "Jordan Rivera",
		Matter:      "personal injury case",
		CaseDetails: true,
		NextSteps:   true,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Dear Jordan Rivera,")
	assert.Contains(t, out, "personal injury case")
	assert.Contains(t, out, "consultation is scheduled")
	assert.NotContains(t, out, "getting to know you better")
}

func TestRenderUnknownNameFails(t *testing.T) {
	lib, err := templates.NewDefault()
	require.NoError(t, err)

	_, err = lib.Render("nope", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestLoadDirOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	doc := `---
id: comm_welcome_email
kind: welcome
subject: Custom welcome
---
Hello {{.Recipient}}, welcome aboard.
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "welcome.md"), []byte(doc), 0o644))

	lib, err := templates.LoadDir(dir)
	require.NoError(t, err)

	out, err := lib.Render(templates.CommWelcomeEmail, templates.CommData{Recipient: "Sam"})
	require.NoError(t, err)
	assert.Contains(t, out, "Hello Sam, welcome aboard.")

	// Untouched defaults survive alongside the override.
	assert.True(t, lib.Has(templates.ContractBase))
}
