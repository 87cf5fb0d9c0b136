package arg

import "strconv"

// Address is a code or data address in the observed program.
type Address uintptr

// Native returns the raw address.
func (a Address) Native() uintptr { return uintptr(a) }

func (a Address) String() string { return "0x" + strconv.FormatUint(uint64(a), 16) }

// Value is a register-sized integer such as a call argument or return value.
type Value uint64

// Native returns the raw value.
func (v Value) Native() uint64 { return uint64(v) }

// Int returns the value reinterpreted as a signed integer.
func (v Value) Int() int64 { return int64(v) }

// Size is a byte count.
type Size uint32

// Native returns the raw size.
func (s Size) Native() uint32 { return uint32(s) }

// ThreadID is the engine's identifier for an observed thread.
type ThreadID uint32

// Native returns the raw id.
func (t ThreadID) Native() uint32 { return uint32(t) }

// Taken reports whether a branch was taken.
type Taken bool

// Native returns the raw flag.
func (t Taken) Native() bool { return bool(t) }

func wrapAddress(v uintptr) Address { return Address(v) }

func wrapValue(v uint64) Value { return Value(v) }

// InstPtr describes the address of the instrumented instruction.
func InstPtr() Descriptor[uintptr, Address] { return Define(KindInstPtr, wrapAddress) }

// ReturnIP describes the return address of the current call.
func ReturnIP() Descriptor[uintptr, Address] { return Define(KindReturnIP, wrapAddress) }

// BranchTarget describes the target address of a branch.
func BranchTarget() Descriptor[uintptr, Address] { return Define(KindBranchTarget, wrapAddress) }

// BranchTaken describes whether a conditional branch is taken.
func BranchTaken() Descriptor[bool, Taken] {
	return Define(KindBranchTaken, func(v bool) Taken { return Taken(v) })
}

// MemoryReadEA describes the effective address of a memory read.
func MemoryReadEA() Descriptor[uintptr, Address] { return Define(KindMemoryReadEA, wrapAddress) }

// MemoryWriteEA describes the effective address of a memory write.
func MemoryWriteEA() Descriptor[uintptr, Address] { return Define(KindMemoryWriteEA, wrapAddress) }

// MemoryReadSize describes the size of a memory read.
func MemoryReadSize() Descriptor[uint32, Size] {
	return Define(KindMemoryReadSize, func(v uint32) Size { return Size(v) })
}

// FuncArg describes the call argument at index n, read at routine entry.
func FuncArg(n int) Descriptor[uint64, Value] {
	return Define(KindFuncArgEntry, wrapValue).WithOperand(n)
}

// FuncRet describes the return value, read at routine exit.
func FuncRet() Descriptor[uint64, Value] { return Define(KindFuncRetExit, wrapValue) }

// Thread describes the observed thread's id.
func Thread() Descriptor[uint32, ThreadID] {
	return Define(KindThreadID, func(v uint32) ThreadID { return ThreadID(v) })
}

// SyscallNumber describes the number of the system call being made.
func SyscallNumber() Descriptor[uint64, Value] { return Define(KindSyscallNumber, wrapValue) }
