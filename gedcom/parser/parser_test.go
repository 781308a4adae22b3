package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/kin/gedcom"
)

// writeGedcom drops fixture content into a temp .ged file.
func writeGedcom(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.ged")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func parseFixture(t *testing.T, content string) *gedcom.Result {
	t.Helper()
	result, err := New(writeGedcom(t, content)).Parse()
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

const basicIndividual = `0 @I1@ INDI
1 NAME John /SMITH/
1 SEX M
1 OCCU Blacksmith
1 BIRT
2 DATE 01 JAN 1900
2 PLAC Paris
1 DEAT
2 DATE 31 DEC 1980
2 PLAC Lyon
`

func TestParseBasicIndividual(t *testing.T) {
	result := parseFixture(t, basicIndividual)

	require.Len(t, result.Individuals, 1)
	ind := result.Individuals["1"]
	require.NotNil(t, ind)

	assert.Equal(t, "1", ind.ID)
	assert.Equal(t, "John SMITH", ind.Name)
	assert.Equal(t, "M", ind.Gender)
	assert.Equal(t, "Blacksmith", ind.Occupation)
	assert.Equal(t, gedcom.EventDetail{Date: "01 JAN 1900", Place: "Paris"}, ind.Birth)
	assert.Equal(t, gedcom.EventDetail{Date: "31 DEC 1980", Place: "Lyon"}, ind.Death)

	assert.Equal(t, 1, result.Summary.TotalIndividuals)
	assert.Equal(t, 0, result.Summary.TotalFamilies)
	assert.Empty(t, result.Summary.Error)
	assert.False(t, result.Summary.ParsedAt.IsZero())
}

func TestParseMissingFileDegrades(t *testing.T) {
	result, err := New(filepath.Join(t.TempDir(), "missing.ged")).Parse()
	require.NoError(t, err)

	assert.Empty(t, result.Individuals)
	assert.Empty(t, result.Families)
	assert.Empty(t, result.Summary.Error)
}

func TestParseCommitsOnNextRecordAndEOF(t *testing.T) {
	result := parseFixture(t, `0 @I1@ INDI
1 NAME First /ONE/
0 @I2@ INDI
1 NAME Second /TWO/
`)

	require.Len(t, result.Individuals, 2)
	assert.Equal(t, "First ONE", result.Individuals["1"].Name)
	assert.Equal(t, "Second TWO", result.Individuals["2"].Name)
	assert.Equal(t, []string{"1", "2"}, result.IndividualOrder)
}

func TestParseLastWriteWinsOnIdCollision(t *testing.T) {
	result := parseFixture(t, `0 @I1@ INDI
1 NAME Old /NAME/
0 @I1@ INDI
1 NAME New /NAME/
`)

	require.Len(t, result.Individuals, 1)
	assert.Equal(t, "New NAME", result.Individuals["1"].Name)
	assert.Equal(t, []string{"1"}, result.IndividualOrder)
}

func TestParseSectionSurvivesUnrelatedTags(t *testing.T) {
	// FAMC does not close the birth section, so the second DATE still
	// lands in birth. Flat section state, not strict nesting.
	result := parseFixture(t, `0 @I1@ INDI
1 BIRT
2 DATE 1900
1 FAMC @F1@
2 DATE 1901
`)

	ind := result.Individuals["1"]
	assert.Equal(t, "1901", ind.Birth.Date)
	assert.Equal(t, []string{"1"}, ind.FamiliesAsChild)
}

func TestParseNotesAppendAsIndependentEntries(t *testing.T) {
	result := parseFixture(t, `0 @I1@ INDI
1 NOTE first line
2 CONT second line
2 CONC third line
2 NOTE fourth line
`)

	ind := result.Individuals["1"]
	assert.Equal(t, []string{"first line", "second line", "third line", "fourth line"}, ind.Notes)
}

func TestParseMedia(t *testing.T) {
	result := parseFixture(t, `0 @I1@ INDI
1 OBJE
2 FILE photos/portrait.jpg
`)

	assert.Equal(t, []string{"photos/portrait.jpg"}, result.Individuals["1"].Media)
}

func TestParseSkipsMalformedLines(t *testing.T) {
	result := parseFixture(t, `garbage
0 @I1@ INDI
not a gedcom line
1 NAME John /SMITH/
x SEX M
`)

	require.Len(t, result.Individuals, 1)
	ind := result.Individuals["1"]
	assert.Equal(t, "John SMITH", ind.Name)
	assert.Empty(t, ind.Gender)
}

func TestParseFamily(t *testing.T) {
	result := parseFixture(t, `0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 CHIL @I4@
1 MARR
2 DATE 12 JUN 1925
2 PLAC Bordeaux
1 NOTE a long union
`)

	require.Len(t, result.Families, 1)
	fam := result.Families["1"]
	assert.Equal(t, "1", fam.Husband)
	assert.Equal(t, "2", fam.Wife)
	assert.Equal(t, []string{"3", "4"}, fam.Children)
	assert.Equal(t, gedcom.EventDetail{Date: "12 JUN 1925", Place: "Bordeaux"}, fam.Marriage)
	assert.Equal(t, []string{"a long union"}, fam.Notes)
	assert.False(t, fam.Divorced)
}

func TestParseFamilyDivorceFlags(t *testing.T) {
	for _, tag := range []string{"DIV", "SEP"} {
		result := parseFixture(t, "0 @F1@ FAM\n1 "+tag+" Y\n")
		assert.True(t, result.Families["1"].Divorced, "tag %s", tag)
	}
}

func TestParseMarriageWithoutMarrMarker(t *testing.T) {
	// Level-2 DATE/PLAC always target marriage while a family is open;
	// there is no family-level section state.
	result := parseFixture(t, `0 @F1@ FAM
1 HUSB @I1@
2 DATE 1950
`)

	assert.Equal(t, "1950", result.Families["1"].Marriage.Date)
}

const smallTree = `0 @I1@ INDI
1 NAME Pierre /DUPONT/
1 SEX M
1 FAMS @F1@
0 @I2@ INDI
1 NAME Jeanne /MARTIN/
1 SEX F
1 FAMS @F1@
0 @I3@ INDI
1 NAME Luc /DUPONT/
1 SEX M
1 FAMC @F1@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
`

func TestResolveParentsHusbandBeforeWife(t *testing.T) {
	result := parseFixture(t, smallTree)
	assert.Equal(t, []string{"1", "2"}, result.Individuals["3"].Parents)
}

func TestResolveSpouseAndChildren(t *testing.T) {
	result := parseFixture(t, smallTree)

	assert.Equal(t, []string{"2"}, result.Individuals["1"].Spouse)
	assert.Equal(t, []string{"1"}, result.Individuals["2"].Spouse)
	assert.Equal(t, []string{"3"}, result.Individuals["1"].Children)
	assert.Equal(t, []string{"3"}, result.Individuals["2"].Children)
	assert.Empty(t, result.Individuals["3"].Children)
}

func TestResolveDanglingFamilyReference(t *testing.T) {
	result := parseFixture(t, `0 @I1@ INDI
1 NAME Orphan /RECORD/
1 FAMC @F9@
`)

	ind := result.Individuals["1"]
	assert.Empty(t, ind.Parents)
	assert.Equal(t, []string{"9"}, ind.FamiliesAsChild)
}

func TestResolveDanglingChildIdsFlowThrough(t *testing.T) {
	// Children referenced by a family need no individual record.
	result := parseFixture(t, `0 @I1@ INDI
1 FAMS @F1@
0 @F1@ FAM
1 HUSB @I1@
1 CHIL @I99@
`)

	assert.Equal(t, []string{"99"}, result.Individuals["1"].Children)
}

func TestResolveDuplicateReferencesNotDeduplicated(t *testing.T) {
	result := parseFixture(t, `0 @I3@ INDI
1 FAMC @F1@
1 FAMC @F1@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
`)

	assert.Equal(t, []string{"1", "2", "1", "2"}, result.Individuals["3"].Parents)
}

func TestResolveSpouseRequiresMembership(t *testing.T) {
	// I5 references the family but is neither husband nor wife: no
	// spouse link, children still attach.
	result := parseFixture(t, `0 @I5@ INDI
1 FAMS @F1@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
`)

	ind := result.Individuals["5"]
	assert.Empty(t, ind.Spouse)
	assert.Equal(t, []string{"3"}, ind.Children)
}

func TestParseEmitsProgress(t *testing.T) {
	var events []string
	emitter := &recordingEmitter{events: &events}

	_, err := New(writeGedcom(t, smallTree), WithEmitter(emitter)).Parse()
	require.NoError(t, err)

	assert.Contains(t, events, "stage:read")
	assert.Contains(t, events, "stage:individuals")
	assert.Contains(t, events, "stage:families")
	assert.Contains(t, events, "stage:resolve")
	assert.Contains(t, events, "complete")
}

type recordingEmitter struct {
	events *[]string
}

func (r *recordingEmitter) EmitStage(stage, _ string) {
	*r.events = append(*r.events, "stage:"+stage)
}

func (r *recordingEmitter) EmitCount(what string, _ int) {
	*r.events = append(*r.events, "count:"+what)
}

func (r *recordingEmitter) EmitError(stage string, _ error) {
	*r.events = append(*r.events, "error:"+stage)
}

func (r *recordingEmitter) EmitComplete(map[string]interface{}) {
	*r.events = append(*r.events, "complete")
}
