package insert

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/dynhook/hook/arg"
	"github.com/kolkov/dynhook/hook/scope"
	"github.com/kolkov/dynhook/internal/hook/config"
	"github.com/kolkov/dynhook/internal/hook/logging"
	"github.com/kolkov/dynhook/internal/hook/site"
)

type stubTarget struct {
	h    scope.Handle
	args []arg.Extraction
}

func newStub(args ...arg.Extraction) *stubTarget {
	return &stubTarget{h: scope.NewHandle(), args: args}
}

func (s *stubTarget) Handle() scope.Handle          { return s.h }
func (s *stubTarget) Entry() scope.Entry            { return stubEntry }
func (s *stubTarget) Extractions() []arg.Extraction { return s.args }

func stubEntry(scope.Handle, scope.Frame) scope.Flag { return scope.Proceed }

type call struct {
	Primitive scope.Primitive
	Location  scope.Location
	Request   scope.Request
}

// fakeScope records registrations and can be told to fail.
type fakeScope struct {
	invalid bool
	fail    error
	calls   []call
}

func (f *fakeScope) Valid() bool { return f != nil && !f.invalid }

func (f *fakeScope) record(p scope.Primitive, loc scope.Location, req scope.Request) error {
	if f.fail != nil {
		return f.fail
	}
	f.calls = append(f.calls, call{Primitive: p, Location: loc, Request: req})
	return nil
}

func (f *fakeScope) InsertCall(loc scope.Location, _ scope.Entry, req scope.Request) error {
	return f.record(scope.Plain, loc, req)
}

func (f *fakeScope) InsertIfCall(loc scope.Location, _ scope.Entry, req scope.Request) error {
	return f.record(scope.If, loc, req)
}

func (f *fakeScope) InsertThenCall(loc scope.Location, _ scope.Entry, req scope.Request) error {
	return f.record(scope.Then, loc, req)
}

func (f *fakeScope) InsertPredicatedCall(loc scope.Location, _ scope.Entry, req scope.Request) error {
	return f.record(scope.Predicated, loc, req)
}

var cmpRequest = cmp.Comparer(func(a, b scope.Handle) bool { return a == b })

// TestCall_Request verifies the request carries handle, args and extras.
func TestCall_Request(t *testing.T) {
	obj := &fakeScope{}
	tgt := newStub(arg.InstPtr().Extraction(), arg.FuncArg(2).Extraction())

	require.NoError(t, Call(scope.Predicated, tgt, scope.Before, obj, 42, "tag"))
	require.Len(t, obj.calls, 1)

	want := call{
		Primitive: scope.Predicated,
		Location:  scope.Before,
		Request: scope.Request{
			Context: tgt.h,
			Args: []arg.Extraction{
				{Kind: arg.KindInstPtr},
				{Kind: arg.KindFuncArgEntry, Operand: 2},
			},
			Extra: []any{42, "tag"},
		},
	}
	if diff := cmp.Diff(want, obj.calls[0], cmpRequest); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}

// TestCall_ExtraCopied verifies later edits to the caller's slice are not observed.
func TestCall_ExtraCopied(t *testing.T) {
	obj := &fakeScope{}
	extra := []any{1, 2, 3}

	require.NoError(t, Call(scope.Plain, newStub(), scope.After, obj, extra...))
	extra[0] = 99

	assert.Equal(t, []any{1, 2, 3}, obj.calls[0].Request.Extra)
}

// TestCall_NoExtra verifies zero extras produce an empty request list.
func TestCall_NoExtra(t *testing.T) {
	obj := &fakeScope{}
	require.NoError(t, Call(scope.Plain, newStub(), scope.Anywhere, obj))
	assert.Empty(t, obj.calls[0].Request.Extra)
}

// TestCall_MaxExtra verifies the extra argument ceiling.
func TestCall_MaxExtra(t *testing.T) {
	obj := &fakeScope{}
	six := []any{1, 2, 3, 4, 5, 6}
	require.NoError(t, Call(scope.Plain, newStub(), scope.Before, obj, six...))

	err := Call(scope.Plain, newStub(), scope.Before, obj, append(six, 7)...)
	require.ErrorIs(t, err, ErrTooManyExtra)
	assert.Len(t, obj.calls, 1, "rejected request must not register")
}

// TestCall_Rejections verifies each validation failure and its error shape.
func TestCall_Rejections(t *testing.T) {
	badKind := arg.Extraction{Kind: arg.KindFuncArgEntry}

	tests := []struct {
		name string
		p    scope.Primitive
		tgt  Target
		loc  scope.Location
		obj  scope.Scope
		want error
	}{
		{name: "nil scope", p: scope.Plain, tgt: newStub(), loc: scope.Before, obj: nil, want: ErrInvalidScope},
		{name: "nil pointer scope", p: scope.Plain, tgt: newStub(), loc: scope.Before, obj: (*fakeScope)(nil), want: ErrInvalidScope},
		{name: "sentinel scope", p: scope.Then, tgt: newStub(), loc: scope.After, obj: &fakeScope{invalid: true}, want: ErrInvalidScope},
		{name: "zero location", p: scope.Plain, tgt: newStub(), loc: 0, obj: &fakeScope{}, want: ErrInvalidLocation},
		{name: "zero primitive", p: 0, tgt: newStub(), loc: scope.Before, obj: &fakeScope{}, want: ErrInvalidPrimitive},
		{name: "bad extraction", p: scope.Plain, tgt: newStub(badKind), loc: scope.Before, obj: &fakeScope{}, want: ErrInvalidExtraction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Call(tt.p, tt.tgt, tt.loc, tt.obj)
			require.ErrorIs(t, err, tt.want)

			var ie *Error
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.p, ie.Primitive)
			assert.Equal(t, tt.loc, ie.Location)
			if fs, ok := tt.obj.(*fakeScope); ok && fs != nil {
				assert.Empty(t, fs.calls)
			}
		})
	}
}

// TestCall_PrimitiveErrorUnchanged verifies primitive errors pass through as is.
func TestCall_PrimitiveErrorUnchanged(t *testing.T) {
	boom := errors.New("engine full")
	err := Call(scope.Plain, newStub(), scope.Before, &fakeScope{fail: boom})
	assert.Same(t, boom, err)
}

// TestError_Format verifies the message and suggestion.
func TestError_Format(t *testing.T) {
	err := Call(scope.Then, newStub(), scope.After, &fakeScope{invalid: true})
	require.Error(t, err)
	assert.Equal(t,
		"insert then call after on *insert.fakeScope: invalid scope\n\n"+
			"Suggestion: the scope is nil or the invalid sentinel; check the engine lookup that produced it",
		err.Error())
}

// TestRetarget verifies the shared extras and site survive retargeting.
func TestRetarget(t *testing.T) {
	a := newStub(arg.InstPtr().Extraction())
	b := newStub()
	req := NewRequest(a, []any{"x"})
	req.Site = 7

	got := Retarget(req, b)
	assert.Equal(t, b.h, got.Context)
	assert.Empty(t, got.Args)
	assert.Equal(t, 7, int(got.Site))
	assert.Equal(t, []any{"x"}, got.Extra)
}

// TestNewRequest_Site verifies site capture follows the config.
func TestNewRequest_Site(t *testing.T) {
	prev := config.Current()
	t.Cleanup(func() { config.Apply(prev) })

	c := prev
	c.Sites = false
	config.Apply(c)
	assert.Zero(t, NewRequest(newStub(), nil).Site)

	c.Sites = true
	config.Apply(c)
	id := NewRequest(newStub(), nil).Site
	require.NotZero(t, id)
	assert.NotNil(t, site.Lookup(id))
}

// TestForward_DebugLog verifies successful registrations are logged at debug.
func TestForward_DebugLog(t *testing.T) {
	prev := logging.L()
	t.Cleanup(func() { logging.Set(prev) })
	var buf bytes.Buffer
	logging.Set(logging.New(&buf, logiface.LevelDebug))

	require.NoError(t, Call(scope.If, newStub(), scope.Before, &fakeScope{}, 1))
	out := buf.String()
	assert.Contains(t, out, `"msg":"dynhook: registration"`)
	assert.Contains(t, out, `"primitive":"if"`)
	assert.Contains(t, out, `"location":"before"`)
}

// TestValidate_NoticeLog verifies rejected registrations are logged.
func TestValidate_NoticeLog(t *testing.T) {
	prev := logging.L()
	t.Cleanup(func() { logging.Set(prev) })
	var buf bytes.Buffer
	logging.Set(logging.New(&buf, logiface.LevelNotice))

	require.Error(t, Call(scope.Plain, newStub(), scope.Before, nil))
	assert.Contains(t, buf.String(), `"msg":"dynhook: registration rejected"`)
}
