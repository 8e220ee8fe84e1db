package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NamelessFaceless/xivanalysis/internal/event"
)

func TestLoad_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := Load("testdata/dummy.json")
	require.NoError(t, err)
	fromYAML, err := Load("testdata/dummy.yaml")
	require.NoError(t, err)

	assert.Equal(t, fromJSON.Fight, fromYAML.Fight)
	assert.Equal(t, fromJSON.Events, fromYAML.Events)
	assert.Equal(t, "testdata/dummy.json", fromJSON.Path)
	assert.NotEmpty(t, fromJSON.Raw)
}

func TestLoad_Contents(t *testing.T) {
	rec, err := Load("testdata/dummy.json")
	require.NoError(t, err)

	assert.Equal(t, int64(3), rec.Fight.ID)
	assert.Equal(t, "DNC", rec.Fight.Job)
	assert.Equal(t, 1, rec.Fight.PartySize())
	require.Len(t, rec.Events, 2)
	assert.Equal(t, event.Event{
		Timestamp: 1100,
		Type:      event.TypeDamage,
		SourceID:  1,
		TargetID:  100,
		AbilityID: 15989,
		Amount:    2200,
	}, rec.Events[1])
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.json", FormatJSON, false},
		{"a.JSON", FormatJSON, false},
		{"a.yaml", FormatYAML, false},
		{"a.yml", FormatYAML, false},
		{"a.csv", "", true},
		{"a", "", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := Parse([]byte(`{"fight":{"player":1,"job":"DNC"},"evnts":[]}`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evnts")

	_, err = Parse([]byte("fight: {player: 1, job: DNC}\nevnts: []\n"), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evnts")
}

func TestParse_HeaderValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing player", `{"fight":{"job":"DNC"}}`, "fight.player"},
		{"missing job", `{"fight":{"player":1}}`, "fight.job"},
		{"end before start", `{"fight":{"player":1,"job":"DNC","start":10,"end":5}}`, "before fight.start"},
		{"actor without id", `{"fight":{"player":1,"job":"DNC","actors":[{"name":"x"}]}}`, "id is required"},
		{"duplicate actor", `{"fight":{"player":1,"job":"DNC","actors":[{"id":2},{"id":2}]}}`, "duplicate actor"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatJSON)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_MalformedEventsAreKept(t *testing.T) {
	rec, err := Parse([]byte(`{"fight":{"player":1,"job":"DNC"},"events":[{"timestamp":5,"type":"bogus"}]}`), FormatJSON)
	require.NoError(t, err)
	assert.Len(t, rec.Events, 1, "event validation happens during analysis")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/nope.json")
	assert.Error(t, err)
}
