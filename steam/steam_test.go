package steam

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/shamir/tree"
)

func TestCatalog(t *testing.T) {
	catalog := NewCatalog()
	assert.Equal(t, []string{"EAccountFlags", "EAccountType", "EAppType", "EClanPermission", "EClanRank", "ECurrencyCode", "EOSType", "EPaymentMethod", "EPersonaState", "EPersonaStateFlag", "EResult", "EUniverse"}, catalog.Names())
	assert.Nil(t, catalog.Find("EMissing"))

	enum := catalog.Find("eresult")
	require.NotNil(t, enum)
	assert.Equal(t, "EResult", enum.Name())
	assert.Equal(t, reflect.TypeOf(EResult(0)), enum.Type.Type)
	assert.Same(t, catalog.Registry().Lookup(enum.Type.Key()), enum.Type)
	assert.Equal(t, "github.com/viant/shamir/steam.EResult", enum.Type.Key())
	assert.Equal(t, Value{Name: "OK", Number: 1}, enum.Values()[1])
}

func TestEnum_Match(t *testing.T) {
	enum := NewCatalog().Find("EPersonaState")
	require.NotNil(t, enum)

	var testCases = []struct {
		query  string
		expect []Value
	}{
		{query: "1", expect: []Value{{Name: "Online", Number: 1}}},
		{query: "42", expect: []Value{{Name: "42", Number: 42}}},
		{query: "away", expect: []Value{{Name: "Away", Number: 3}}},
		{query: "looking", expect: []Value{{Name: "LookingToPlay", Number: 6}, {Name: "LookingToTrade", Number: 5}}},
		{query: "zzz", expect: nil},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, enum.Match(tc.query), tc.query)
	}
	assert.Equal(t, "Online = 1", enum.Match("Online")[0].String())
}

func TestGlobalID(t *testing.T) {
	start := time.Date(2021, 6, 1, 10, 30, 0, 0, time.UTC)
	gid := NewGlobalID(513, 3, start, 77)
	assert.Equal(t, uint32(513), gid.BoxID())
	assert.Equal(t, uint32(3), gid.ProcessID())
	assert.Equal(t, start, gid.StartTime())
	assert.Equal(t, uint32(77), gid.SequentialCount())
	assert.Equal(t, uint32(0), GlobalID(0).BoxID())
	assert.Equal(t, gidEpoch, GlobalID(0).StartTime())
}

func run(args ...string) (int, string, string) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	env := &tree.Env{Stdout: stdout, Stderr: stderr, Logger: logger}
	code := tree.Dispatch(context.Background(), NewGroup(), args, env)
	return code, stdout.String(), stderr.String()
}

func TestEnumCommand(t *testing.T) {
	var testCases = []struct {
		description string
		args        []string
		code        int
		stdout      string
		stderr      string
	}{
		{description: "numeric", args: []string{"enum", "EResult", "2"}, stdout: "Fail = 2\n"},
		{description: "exact name", args: []string{"enum", "eresult", "accessdenied"}, stdout: "AccessDenied = 15\n"},
		{description: "single substring", args: []string{"enum", "EUniverse", "pub"}, stdout: "Public = 1\n"},
		{description: "multiple", args: []string{"enum", "EClanRank", "o"}, code: 1,
			stderr: "Multiple matches found in EClanRank:\n  - Moderator\n  - None\n  - Officer\n  - Owner\n"},
		{description: "flags enum", args: []string{"enum", "EAccountFlags", "admin"}, stdout: "Admin = 16\n"},
		{description: "currency", args: []string{"enum", "ecurrencycode", "aud"}, stdout: "AUD = 21\n"},
		{description: "negative values", args: []string{"enum", "EOSType", "web"}, stdout: "Web = -700\n"},
		{description: "none", args: []string{"enum", "EClanRank", "zzz"}, code: 1, stderr: "No match found in EClanRank for 'zzz'\n"},
		{description: "unknown enum", args: []string{"enum", "ENope", "1"}, code: 1,
			stderr: "No such enum could be found. Valid names:\n" +
				"  - EAccountFlags\n  - EAccountType\n  - EAppType\n  - EClanPermission\n  - EClanRank\n  - ECurrencyCode\n" +
				"  - EOSType\n  - EPaymentMethod\n  - EPersonaState\n  - EPersonaStateFlag\n  - EResult\n  - EUniverse\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			code, stdout, stderr := run(tc.args...)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.stdout, stdout)
			assert.Equal(t, tc.stderr, stderr)
		})
	}
}

func TestGidCommand(t *testing.T) {
	gid := NewGlobalID(1, 2, time.Date(2010, 1, 2, 3, 4, 5, 0, time.UTC), 9)
	code, stdout, _ := run("gid", fmt.Sprint(uint64(gid)))
	assert.Equal(t, 0, code)
	assert.Equal(t, "Box ID             : 1\n"+
		"Process ID         : 2\n"+
		"Process Start Time : 2010-01-02 03:04:05\n"+
		"Sequence           : 9\n", stdout)

	code, _, stderr := run("gid", "not-a-number")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, stderr)
}
