package anymap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"
)

func TestLiftSync_ConcurrentReaders(t *testing.T) {
	box := LiftSync(Config{Names: []string{"alpha", "beta"}})

	var observed [2][]string

	var g errgroup.Group
	for idx := range observed {
		g.Go(func() error {
			observed[idx] = UnsafeRef[Config](box).Names
			return nil
		})
	}

	require.NoError(t, g.Wait())
	require.Equal(t, observed[0], observed[1])
	require.Equal(t, []string{"alpha", "beta"}, observed[0])
}

func TestLiftSend_MoveToGoroutine(t *testing.T) {
	box := LiftSend(Message{Text: "ping"})

	boxes := make(chan *Box[Sendable], 1)
	boxes <- box

	var g errgroup.Group
	g.Go(func() error {
		received := <-boxes
		UnsafeMut[Message](received).Text = "pong"
		boxes <- received
		return nil
	})

	require.NoError(t, g.Wait())
	require.Equal(t, "pong", UnsafeInto[Message](<-boxes).Text)
}

func TestSync_ImpliesSend(t *testing.T) {
	// a type embedding Sync can be put into every kind of box
	require.True(t, Is[Config](LiftSend(Config{})))
	require.True(t, Is[Config](LiftSync(Config{})))
	require.True(t, Is[Config](Lift(Config{})))
}

func TestLiftSend_RejectsLocalType(t *testing.T) {
	if testing.Short() {
		t.Skip("type checks fixture packages")
	}

	errs := typeCheck(t, "./testdata/rejected")
	require.NotEmpty(t, errs)

	joined := strings.Join(errs, "\n")
	require.Contains(t, joined, "does not satisfy")
	require.Contains(t, joined, "fileHandle does not satisfy")
	require.Contains(t, joined, "IsSend")
}

func TestLiftSync_RejectsSendOnlyType(t *testing.T) {
	if testing.Short() {
		t.Skip("type checks fixture packages")
	}

	joined := strings.Join(typeCheck(t, "./testdata/rejected"), "\n")
	require.Contains(t, joined, "sendOnly does not satisfy")
	require.Contains(t, joined, "IsSync")

	// embedding Send is enough for a sendable box
	require.NotContains(t, joined, "sendOnly does not satisfy anymap.IsSend")
}

func TestLiftSend_AcceptsMarkedTypes(t *testing.T) {
	if testing.Short() {
		t.Skip("type checks fixture packages")
	}

	errs := typeCheck(t, "./testdata/accepted")
	require.Empty(t, errs)
}

func typeCheck(t *testing.T, pattern string) []string {
	t.Helper()

	config := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedDeps | packages.NeedSyntax | packages.NeedTypes,
		Tests: false,
	}

	pkgs, err := packages.Load(config, pattern)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	var messages []string
	for _, pkgErr := range pkgs[0].Errors {
		// the error from the go list invocation repeats the type error
		if pkgErr.Kind == packages.TypeError {
			messages = append(messages, pkgErr.Msg)
		}
	}

	return messages
}

func TestAffinityNames(t *testing.T) {
	names := []string{affinityName[Local](), affinityName[Sendable](), affinityName[Shareable]()}
	require.Equal(t, "Local,Sendable,Shareable", strings.Join(names, ","))
}
