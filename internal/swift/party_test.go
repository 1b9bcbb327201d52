package swift

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeParty(t *testing.T) {
	info := DecomposeParty("/1234567890\nJOHN DOE\n123 MAIN ST")

	assert.Equal(t, "1234567890", info.Account)
	assert.Equal(t, "JOHN DOE", info.Name)
	assert.Equal(t, []string{"123 MAIN ST"}, info.AddressLines)
}

func TestDecomposePartyNoAccount(t *testing.T) {
	info := DecomposeParty("ACME CORP\n1 INDUSTRIAL WAY\nSPRINGFIELD")

	assert.Empty(t, info.Account)
	assert.Equal(t, "ACME CORP", info.Name)
	assert.Equal(t, []string{"1 INDUSTRIAL WAY", "SPRINGFIELD"}, info.AddressLines)
}

func TestDecomposePartyAccountOnly(t *testing.T) {
	info := DecomposeParty("/GB29NWBK60161331926819")

	assert.Equal(t, "GB29NWBK60161331926819", info.Account)
	assert.Empty(t, info.Name)
	assert.Empty(t, info.AddressLines)
}

func TestDecomposePartyEmpty(t *testing.T) {
	info := DecomposeParty("")
	assert.True(t, info.IsEmpty())

	info = DecomposeParty("  \n  ")
	assert.True(t, info.IsEmpty())
}

func TestDecomposePartyAddressCaps(t *testing.T) {
	lines := []string{"NAME"}
	for i := 0; i < 10; i++ {
		lines = append(lines, strings.Repeat("X", 80))
	}
	info := DecomposeParty(strings.Join(lines, "\n"))

	require.Len(t, info.AddressLines, 7)
	for _, line := range info.AddressLines {
		assert.Len(t, line, 70)
	}
}

func TestDecomposeInstitutionBIC(t *testing.T) {
	info := DecomposeInstitution("DEUTDEFF")

	assert.Equal(t, "DEUTDEFF", info.BIC)
	assert.Empty(t, info.Name)
}

func TestDecomposeInstitutionBICWithBranch(t *testing.T) {
	info := DecomposeInstitution("DEUTDEFF500\nDEUTSCHE BANK\nFRANKFURT")

	assert.Equal(t, "DEUTDEFF500", info.BIC)
	assert.Equal(t, "DEUTSCHE BANK FRANKFURT", info.Name)
}

func TestDecomposeInstitutionNameOnly(t *testing.T) {
	info := DecomposeInstitution("SOME LOCAL BANK\nHIGH STREET")

	assert.Empty(t, info.BIC)
	assert.Equal(t, "SOME LOCAL BANK HIGH STREET", info.Name)
}

func TestDecomposeInstitutionAccountPrefix(t *testing.T) {
	info := DecomposeInstitution("/987654\nCHASUS33\nJP MORGAN CHASE")

	assert.Equal(t, "987654", info.Account)
	assert.Equal(t, "CHASUS33", info.BIC)
	assert.Equal(t, "JP MORGAN CHASE", info.Name)
}

func TestDecomposeInstitutionNotABIC(t *testing.T) {
	// Lowercase and wrong lengths fail the structural check.
	for _, text := range []string{"deutdeff", "DEUTDE", "DEUTDEFF5000"} {
		info := DecomposeInstitution(text)
		assert.Empty(t, info.BIC, text)
		assert.Equal(t, text, info.Name)
	}
}
