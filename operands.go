package jclass

import (
	"fmt"
	"strconv"
)

// Opcode is a JVM instruction opcode.
type Opcode uint8

const (
	OpNop          Opcode = 0x00
	OpAconstNull   Opcode = 0x01
	OpIconst0      Opcode = 0x03
	OpIload        Opcode = 0x15
	OpIload0       Opcode = 0x1a
	OpIstore       Opcode = 0x36
	OpIstore0      Opcode = 0x3b
	OpIadd         Opcode = 0x60
	OpIinc         Opcode = 0x84
	OpI2l          Opcode = 0x85
	OpIfeq         Opcode = 0x99
	OpTableswitch  Opcode = 0xaa
	OpLookupswitch Opcode = 0xab
	OpIreturn      Opcode = 0xac
	OpReturn       Opcode = 0xb1
	OpGetstatic    Opcode = 0xb2
	OpArraylength  Opcode = 0xbe
	OpAthrow       Opcode = 0xbf
	OpMonitorenter Opcode = 0xc2
	OpMonitorexit  Opcode = 0xc3
	OpWide         Opcode = 0xc4
	OpJsrW         Opcode = 0xc9
)

var opcodeNames = [...]string{"nop", "aconst_null", "iconst_m1", "iconst_0", "iconst_1", "iconst_2", "iconst_3", "iconst_4", "iconst_5", "lconst_0", "lconst_1", "fconst_0", "fconst_1", "fconst_2", "dconst_0", "dconst_1", "bipush", "sipush", "ldc", "ldc_w", "ldc2_w", "iload", "lload", "fload", "dload", "aload", "iload_0", "iload_1", "iload_2", "iload_3", "lload_0", "lload_1", "lload_2", "lload_3", "fload_0", "fload_1", "fload_2", "fload_3", "dload_0", "dload_1", "dload_2", "dload_3", "aload_0", "aload_1", "aload_2", "aload_3", "iaload", "laload", "faload", "daload", "aaload", "baload", "caload", "saload", "istore", "lstore", "fstore", "dstore", "astore", "istore_0", "istore_1", "istore_2", "istore_3", "lstore_0", "lstore_1", "lstore_2", "lstore_3", "fstore_0", "fstore_1", "fstore_2", "fstore_3", "dstore_0", "dstore_1", "dstore_2", "dstore_3", "astore_0", "astore_1", "astore_2", "astore_3", "iastore", "lastore", "fastore", "dastore", "aastore", "bastore", "castore", "sastore", "pop", "pop2", "dup", "dup_x1", "dup_x2", "dup2", "dup2_x1", "dup2_x2", "swap", "iadd", "ladd", "fadd", "dadd", "isub", "lsub", "fsub", "dsub", "imul", "lmul", "fmul", "dmul", "idiv", "ldiv", "fdiv", "ddiv", "irem", "lrem", "frem", "drem", "ineg", "lneg", "fneg", "dneg", "ishl", "lshl", "ishr", "lshr", "iushr", "lushr", "iand", "land", "ior", "lor", "ixor", "lxor", "iinc", "i2l", "i2f", "i2d", "l2i", "l2f", "l2d", "f2i", "f2l", "f2d", "d2i", "d2l", "d2f", "i2b", "i2c", "i2s", "lcmp", "fcmpl", "fcmpg", "dcmpl", "dcmpg", "ifeq", "ifne", "iflt", "ifge", "ifgt", "ifle", "if_icmpeq", "if_icmpne", "if_icmplt", "if_icmpge", "if_icmpgt", "if_icmple", "if_acmpeq", "if_acmpne", "goto", "jsr", "ret", "tableswitch", "lookupswitch", "ireturn", "lreturn", "freturn", "dreturn", "areturn", "return", "getstatic", "putstatic", "getfield", "putfield", "invokevirtual", "invokespecial", "invokestatic", "invokeinterface", "invokedynamic", "new", "newarray", "anewarray", "arraylength", "athrow", "checkcast", "instanceof", "monitorenter", "monitorexit", "wide", "multianewarray", "ifnull", "ifnonnull", "goto_w", "jsr_w"}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return "op" + strconv.Itoa(int(op))
}

// HasNoOperands reports whether the instruction is exactly one byte long.
func (op Opcode) HasNoOperands() bool {
	switch {
	case op <= 0x0f: // nop .. dconst_1
		return true
	case op >= OpIload0 && op <= 0x35: // xload_n, xaload
		return true
	case op >= OpIstore0 && op < OpIinc: // xstore_n, xastore, stack, arithmetic
		return true
	case op >= OpI2l && op < OpIfeq: // conversions, comparisons
		return true
	case op >= OpIreturn && op <= OpReturn:
		return true
	case op == OpArraylength, op == OpAthrow, op == OpMonitorenter, op == OpMonitorexit:
		return true
	default:
		return false
	}
}

// ZeroOperandInstruction is an instruction consisting of its opcode only.
type ZeroOperandInstruction struct {
	Opcode Opcode
	ok     bool
}

func NewZeroOperandInstruction(op Opcode) ZeroOperandInstruction {
	if !op.HasNoOperands() {
		panic(fmt.Sprintf("%v takes operands", op))
	}
	return ZeroOperandInstruction{op, true}
}

// DecodeZeroOperandInstruction wraps op, which the caller has already read
// from r. Nothing further is consumed, so it never fails.
func DecodeZeroOperandInstruction(op Opcode, r *SegmentedReader) (ZeroOperandInstruction, error) {
	return NewZeroOperandInstruction(op), nil
}

func (v ZeroOperandInstruction) IsNil() bool    { return !v.ok }
func (v ZeroOperandInstruction) Size() int      { return 1 }
func (v ZeroOperandInstruction) String() string { return v.Opcode.String() }

func (v ZeroOperandInstruction) Encode(enc *Encoder) {
	enc.U1(uint8(v.Opcode))
}

const switchCaseSize = 8

// SwitchCase is one match/target pair of a lookupswitch (or, with Match set
// to the implied key, a tableswitch). Target is relative to the address of
// the switch instruction.
type SwitchCase struct {
	Match  int32
	Target int32
	ok     bool
}

func NewSwitchCase(match, target int32) SwitchCase {
	return SwitchCase{match, target, true}
}

func DecodeSwitchCase(r *SegmentedReader) (SwitchCase, error) {
	if err := r.need(switchCaseSize, "switch case"); err != nil {
		return SwitchCase{}, err
	}
	match, _ := r.Int32()
	target, _ := r.Int32()
	return SwitchCase{match, target, true}, nil
}

// ReadSwitchCases decodes n consecutive cases. The caller is responsible for
// the padding and the count that precede them.
func ReadSwitchCases(r *SegmentedReader, n int) ([]SwitchCase, error) {
	if n < 0 {
		panic("negative count")
	}
	if err := r.need(n*switchCaseSize, "switch cases"); err != nil {
		return nil, err
	}
	cases := make([]SwitchCase, n)
	for i := range cases {
		cases[i], _ = DecodeSwitchCase(r)
	}
	return cases, nil
}

func (v SwitchCase) IsNil() bool { return !v.ok }
func (v SwitchCase) Size() int   { return switchCaseSize }

func (v SwitchCase) Encode(enc *Encoder) {
	enc.I4(v.Match)
	enc.I4(v.Target)
}

func (v SwitchCase) String() string {
	return fmt.Sprintf("%d: %+d", v.Match, v.Target)
}
