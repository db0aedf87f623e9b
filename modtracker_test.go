package fbinput_test

import (
	"testing"

	"github.com/badu/fbinput"
	"github.com/stretchr/testify/require"
)

func TestModifierTrackerPersistsPhysicalState(t *testing.T) {
	var tr fbinput.ModifierTracker

	tr.Update(fbinput.KeyLeftCtrl, true)
	require.Equal(t, fbinput.ModCtrl, tr.Current)

	tr.Update(fbinput.KeyLeftShift, true)
	require.Equal(t, fbinput.ModCtrl|fbinput.ModShift, tr.Current)

	tr.Update(fbinput.KeyLeftCtrl, false)
	require.Equal(t, fbinput.ModShift, tr.Current)

	// unrelated key codes are a no-op
	tr.Update(30, true) // KEY_A
	require.Equal(t, fbinput.ModShift, tr.Current)
}

func TestModifierStringRendersHeldKeys(t *testing.T) {
	require.Equal(t, "", fbinput.ModNone.String())
	require.Equal(t, "Shift+Ctrl", (fbinput.ModShift | fbinput.ModCtrl).String())
}
