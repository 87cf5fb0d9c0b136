package arg

import "strconv"

// Kind identifies which runtime value the engine extracts for one parameter.
type Kind uint16

// Built-in extraction kinds.
const (
	KindInvalid Kind = iota

	// KindInstPtr is the address of the instrumented instruction.
	KindInstPtr
	// KindReturnIP is the return address of the current call.
	KindReturnIP
	// KindBranchTarget is the target address of a branch.
	KindBranchTarget
	// KindBranchTaken reports whether a conditional branch is taken.
	KindBranchTaken
	// KindMemoryReadEA is the effective address of a memory read.
	KindMemoryReadEA
	// KindMemoryWriteEA is the effective address of a memory write.
	KindMemoryWriteEA
	// KindMemoryReadSize is the size in bytes of a memory read.
	KindMemoryReadSize
	// KindFuncArgEntry is a call argument at routine entry. Operand: index.
	KindFuncArgEntry
	// KindFuncRetExit is the return value at routine exit.
	KindFuncRetExit
	// KindThreadID is the engine's id for the observed thread.
	KindThreadID
	// KindSyscallNumber is the number of the system call being made.
	KindSyscallNumber
	// KindConst is a value fixed at registration. Operand: the value.
	KindConst

	kindBuiltinEnd
)

// KindUser is the first kind available to tools and engine adapters for
// values the built-in kinds do not cover. Kinds at or above KindUser are
// passed to the engine untouched.
const KindUser Kind = 0x100

var kindNames = [...]string{
	KindInvalid:        "invalid",
	KindInstPtr:        "inst_ptr",
	KindReturnIP:       "return_ip",
	KindBranchTarget:   "branch_target",
	KindBranchTaken:    "branch_taken",
	KindMemoryReadEA:   "memory_read_ea",
	KindMemoryWriteEA:  "memory_write_ea",
	KindMemoryReadSize: "memory_read_size",
	KindFuncArgEntry:   "funcarg_entry",
	KindFuncRetExit:    "funcret_exit",
	KindThreadID:       "thread_id",
	KindSyscallNumber:  "syscall_number",
	KindConst:          "const",
}

// String returns the kind's short name.
func (k Kind) String() string {
	if k < kindBuiltinEnd {
		return kindNames[k]
	}
	if k >= KindUser {
		return "user+" + strconv.Itoa(int(k-KindUser))
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is a built-in kind or a user kind.
func (k Kind) Valid() bool {
	return (k > KindInvalid && k < kindBuiltinEnd) || k >= KindUser
}

// Operands returns how many operands an extraction of this kind requires.
// User kinds declare none; they may still carry one.
func (k Kind) Operands() int {
	switch k {
	case KindFuncArgEntry, KindConst:
		return 1
	default:
		return 0
	}
}

// Extraction is one element of the per-event request handed to the engine:
// a kind plus its operand, if any.
type Extraction struct {
	Kind    Kind
	Operand any
}

// Validate reports whether the engine can honour x.
func (x Extraction) Validate() error {
	if !x.Kind.Valid() {
		return &ExtractionError{Kind: x.Kind, Reason: "unknown kind"}
	}
	if x.Kind.Operands() > 0 && x.Operand == nil {
		return &ExtractionError{Kind: x.Kind, Reason: "missing operand"}
	}
	return nil
}

// ExtractionError reports an extraction the engine cannot honour.
type ExtractionError struct {
	Kind   Kind
	Reason string
}

func (e *ExtractionError) Error() string {
	return "arg: extraction " + e.Kind.String() + ": " + e.Reason
}
