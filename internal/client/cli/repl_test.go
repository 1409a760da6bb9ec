package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/ufood/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
	errs  map[string]error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	if f.args == nil {
		f.args = map[string][]string{}
	}
	f.args[name] = args
	return f.errs[name]
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(_ context.Context, a []string) error {
	return f.record("register", a)
}
func (f *fakeExec) Login(_ context.Context, a []string) error {
	f.loggedIn = true
	return f.record("login", a)
}
func (f *fakeExec) Logout(_ context.Context, a []string) error {
	f.loggedIn = false
	return f.record("logout", a)
}
func (f *fakeExec) WhoAmI(_ context.Context, a []string) error { return f.record("whoami", a) }
func (f *fakeExec) Restaurants(_ context.Context, a []string) error {
	return f.record("restaurants", a)
}
func (f *fakeExec) Restaurant(_ context.Context, a []string) error {
	return f.record("restaurant", a)
}
func (f *fakeExec) Similar(_ context.Context, a []string) error { return f.record("similar", a) }
func (f *fakeExec) Lists(_ context.Context, a []string) error   { return f.record("lists", a) }
func (f *fakeExec) List(_ context.Context, a []string) error    { return f.record("list", a) }
func (f *fakeExec) NewList(_ context.Context, a []string) error { return f.record("newlist", a) }
func (f *fakeExec) RenameList(_ context.Context, a []string) error {
	return f.record("renamelist", a)
}
func (f *fakeExec) DeleteList(_ context.Context, a []string) error {
	return f.record("deletelist", a)
}
func (f *fakeExec) Select(_ context.Context, a []string) error   { return f.record("select", a) }
func (f *fakeExec) Fav(_ context.Context, a []string) error      { return f.record("fav", a) }
func (f *fakeExec) Unfav(_ context.Context, a []string) error    { return f.record("unfav", a) }
func (f *fakeExec) Visits(_ context.Context, a []string) error   { return f.record("visits", a) }
func (f *fakeExec) Visit(_ context.Context, a []string) error    { return f.record("visit", a) }
func (f *fakeExec) Users(_ context.Context, a []string) error    { return f.record("users", a) }
func (f *fakeExec) User(_ context.Context, a []string) error     { return f.record("user", a) }
func (f *fakeExec) Follow(_ context.Context, a []string) error   { return f.record("follow", a) }
func (f *fakeExec) Unfollow(_ context.Context, a []string) error { return f.record("unfollow", a) }
func (f *fakeExec) Stats(_ context.Context, a []string) error    { return f.record("stats", a) }

// capturePrintln replaces printlnFn and returns the printed lines.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runLines(exec execIface, lines ...string) {
	r := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "(status)" }, r)
}

func TestRunREPL_DispatchesEveryCommand(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runLines(exec,
		"register", "login", "whoami", "restaurants pizza place", "restaurant r1", "similar r1",
		"lists", "list", "newlist Date night", "renamelist l1 Brunch", "deletelist l1", "select l2",
		"fav r1", "unfav r1 l2", "visits", "visit r1 5 2024-01-01 Great food", "users ann",
		"user u1", "follow u1", "unfollow u1", "stats", "logout", "exit", "never reached",
	)

	want := []string{
		"register", "login", "whoami", "restaurants", "restaurant", "similar",
		"lists", "list", "newlist", "renamelist", "deletelist", "select",
		"fav", "unfav", "visits", "visit", "users",
		"user", "follow", "unfollow", "stats", "logout",
	}
	assert.Equal(t, want, exec.calls)
	assert.Equal(t, []string{"pizza", "place"}, exec.args["restaurants"])
	assert.Equal(t, []string{"r1", "5", "2024-01-01", "Great", "food"}, exec.args["visit"])
	assert.Empty(t, exec.args["lists"])
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{}
	runLines(exec, "help", "login", "help", "quit")

	assert.Contains(t, *out, helpGuest)
	assert.Contains(t, *out, helpUser)
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{errs: map[string]error{
		"lists":      client.ErrUnauthenticated,
		"restaurant": usageError("restaurant <id>"),
	}}
	runLines(exec, "lists", "restaurant", "foobar", "", "stats")

	assert.Contains(t, *out, "Please log in first.")
	assert.Contains(t, *out, "Usage: restaurant <id>")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Equal(t, []string{"lists", "restaurant", "stats"}, exec.calls, "last line without newline still runs")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runLines(exec)
	assert.Empty(t, exec.calls)
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{usageError("select <id>"), "Usage: select <id>"},
		{fmt.Errorf("login error: %w", client.ErrUnauthenticated), "Please log in first."},
		{&client.RemoteError{Op: client.OpDeleteFavoriteList, StatusCode: 403}, "Access denied: delete_favorite_list: remote status 403"},
		{&client.TransportError{Op: client.OpLogin, Err: errors.New("dial tcp: refused")}, "Server unavailable: login: dial tcp: refused"},
		{client.ErrNoFavoriteList, "No favorite list selected (use 'lists' and 'select <id>')."},
		{errors.New("boom"), "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, describeError(tt.err))
		})
	}
}
