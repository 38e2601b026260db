/*
Package jclass decodes and re-encodes the structural records of the JVM
class-file format: attributes, debug tables, module descriptors, bytecode
operands and stack map frames.

Every record kind follows the same protocol:

1. DecodeX reads the record forward-only from a Cursor (or, for instruction
operands, a SegmentedReader). Running out of bytes is the only failure; it
returns a *DataError wrapping ErrTruncated, leaves the cursor where it was,
and yields the zero record.

2. IsNil distinguishes the zero value from a decoded record whose fields
happen to be zero, e.g. a line number entry at pc 0.

3. Size returns the exact encoded size, so that length headers are written
before the bodies. Variable-length records also have MeasureX functions
that compute the size straight from the encoded bytes.

4. Encode appends the record to an Encoder, TableEncoder or AttributeTable,
translating every constant-pool handle through a Mapper. Using a CopyMapper
re-targets records at a different pool without any per-record logic.

# Handles

Constant-pool references are typed ordinals (Utf8Ref, ClassRef, ModuleRef,
PackageRef, StringRef). They are never validated while decoding; resolving
them is up to the View or Mapper that later consumes them.

# Wire format

All multi-byte values are big-endian.

	Deprecated, Synthetic      name:u2 length:u4(=0)
	Signature, SourceFile      name:u2 length:u4(=2) value:u2
	NestHost, ModuleMainClass  name:u2 length:u4(=2) class:u2
	interface entry            class:u2
	MethodParameter            name:u2 flags:u2
	LineNumberInfo             start_pc:u2 line:u2
	ModuleRequireInfo          module:u2 flags:u2 version:u2
	ModuleOpenInfo             package:u2 flags:u2 count:u2 module:u2[count]
	ModuleExportInfo           package:u2 flags:u2 count:u2 module:u2[count]
	ModuleProvideInfo          class:u2 count:u2 class:u2[count]
	switch case                match:i4 target:i4
	same_frame                 frame_type:u1 (0-63)
	unknown attribute          byte[length]

Decoded records are immutable values and can be shared between goroutines.
Cursors, readers and encoders cannot.
*/
package jclass
