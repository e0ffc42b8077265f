package syntax

// MaxArity is the largest flat tuple the combinators can build.
// There is no constructor beyond Seq12/Append11, so exceeding the
// bound is a compile error rather than a runtime one.
const MaxArity = 12

// TupleN types are the flat outputs of composed chains. Appending a
// value to a TupleK always yields a Tuple(K+1); tuples never nest.
// The types and the AppendN/SeqN constructors below are written out
// mechanically up to MaxArity.

type Tuple2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

type Tuple3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

type Tuple4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

type Tuple5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

type Tuple6[T1, T2, T3, T4, T5, T6 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

type Tuple7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

type Tuple8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
}

type Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
}

type Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	V1  T1
	V2  T2
	V3  T3
	V4  T4
	V5  T5
	V6  T6
	V7  T7
	V8  T8
	V9  T9
	V10 T10
}

type Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any] struct {
	V1  T1
	V2  T2
	V3  T3
	V4  T4
	V5  T5
	V6  T6
	V7  T7
	V8  T8
	V9  T9
	V10 T10
	V11 T11
}

type Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any] struct {
	V1  T1
	V2  T2
	V3  T3
	V4  T4
	V5  T5
	V6  T6
	V7  T7
	V8  T8
	V9  T9
	V10 T10
	V11 T11
	V12 T12
}

// Append2 grows a flat 2-tuple unit by one further value. The
// result parses head then last in order and prints last before
// head, mirroring Then's reversal recursively.
func Append2[C Cursor, T1, T2, T3 any](head Unit[C, Tuple2[T1, T2]], last Unit[C, T3]) Unit[C, Tuple3[T1, T2, T3]] {
	return append2[C, T1, T2, T3]{head: head, last: last}
}

type append2[C Cursor, T1, T2, T3 any] struct {
	head Unit[C, Tuple2[T1, T2]]
	last Unit[C, T3]
}

func (u append2[C, T1, T2, T3]) Parse(c C) (Tuple3[T1, T2, T3], error) {
	var out Tuple3[T1, T2, T3]
	head, err := u.head.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	last, err := u.last.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return Tuple3[T1, T2, T3]{head.V1, head.V2, last}, nil
}

func (u append2[C, T1, T2, T3]) Print(o Tuple3[T1, T2, T3], c C) error {
	if err := u.last.Print(o.V3, c); err != nil {
		return err
	}
	return u.head.Print(Tuple2[T1, T2]{o.V1, o.V2}, c)
}

func Append3[C Cursor, T1, T2, T3, T4 any](head Unit[C, Tuple3[T1, T2, T3]], last Unit[C, T4]) Unit[C, Tuple4[T1, T2, T3, T4]] {
	return append3[C, T1, T2, T3, T4]{head: head, last: last}
}

type append3[C Cursor, T1, T2, T3, T4 any] struct {
	head Unit[C, Tuple3[T1, T2, T3]]
	last Unit[C, T4]
}

func (u append3[C, T1, T2, T3, T4]) Parse(c C) (Tuple4[T1, T2, T3, T4], error) {
	var out Tuple4[T1, T2, T3, T4]
	head, err := u.head.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	last, err := u.last.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return Tuple4[T1, T2, T3, T4]{head.V1, head.V2, head.V3, last}, nil
}

func (u append3[C, T1, T2, T3, T4]) Print(o Tuple4[T1, T2, T3, T4], c C) error {
	if err := u.last.Print(o.V4, c); err != nil {
		return err
	}
	return u.head.Print(Tuple3[T1, T2, T3]{o.V1, o.V2, o.V3}, c)
}

func Append4[C Cursor, T1, T2, T3, T4, T5 any](head Unit[C, Tuple4[T1, T2, T3, T4]], last Unit[C, T5]) Unit[C, Tuple5[T1, T2, T3, T4, T5]] {
	return append4[C, T1, T2, T3, T4, T5]{head: head, last: last}
}

type append4[C Cursor, T1, T2, T3, T4, T5 any] struct {
	head Unit[C, Tuple4[T1, T2, T3, T4]]
	last Unit[C, T5]
}

func (u append4[C, T1, T2, T3, T4, T5]) Parse(c C) (Tuple5[T1, T2, T3, T4, T5], error) {
	var out Tuple5[T1, T2, T3, T4, T5]
	head, err := u.head.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	last, err := u.last.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return Tuple5[T1, T2, T3, T4, T5]{head.V1, head.V2, head.V3, head.V4, last}, nil
}

func (u append4[C, T1, T2, T3, T4, T5]) Print(o Tuple5[T1, T2, T3, T4, T5], c C) error {
	if err := u.last.Print(o.V5, c); err != nil {
		return err
	}
	return u.head.Print(Tuple4[T1, T2, T3, T4]{o.V1, o.V2, o.V3, o.V4}, c)
}

func Append5[C Cursor, T1, T2, T3, T4, T5, T6 any](head Unit[C, Tuple5[T1, T2, T3, T4, T5]], last Unit[C, T6]) Unit[C, Tuple6[T1, T2, T3, T4, T5, T6]] {
	return append5[C, T1, T2, T3, T4, T5, T6]{head: head, last: last}
}

type append5[C Cursor, T1, T2, T3, T4, T5, T6 any] struct {
	head Unit[C, Tuple5[T1, T2, T3, T4, T5]]
	last Unit[C, T6]
}

func (u append5[C, T1, T2, T3, T4, T5, T6]) Parse(c C) (Tuple6[T1, T2, T3, T4, T5, T6], error) {
	var out Tuple6[T1, T2, T3, T4, T5, T6]
	head, err := u.head.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	last, err := u.last.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return Tuple6[T1, T2, T3, T4, T5, T6]{head.V1, head.V2, head.V3, head.V4, head.V5, last}, nil
}

func (u append5[C, T1, T2, T3, T4, T5, T6]) Print(o Tuple6[T1, T2, T3, T4, T5, T6], c C) error {
	if err := u.last.Print(o.V6, c); err != nil {
		return err
	}
	return u.head.Print(Tuple5[T1, T2, T3, T4, T5]{o.V1, o.V2, o.V3, o.V4, o.V5}, c)
}

func Append6[C Cursor, T1, T2, T3, T4, T5, T6, T7 any](head Unit[C, Tuple6[T1, T2, T3, T4, T5, T6]], last Unit[C, T7]) Unit[C, Tuple7[T1, T2, T3, T4, T5, T6, T7]] {
	return append6[C, T1, T2, T3, T4, T5, T6, T7]{head: head, last: last}
}

type append6[C Cursor, T1, T2, T3, T4, T5, T6, T7 any] struct {
	head Unit[C, Tuple6[T1, T2, T3, T4, T5, T6]]
	last Unit[C, T7]
}

func (u append6[C, T1, T2, T3, T4, T5, T6, T7]) Parse(c C) (Tuple7[T1, T2, T3, T4, T5, T6, T7], error) {
	var out Tuple7[T1, T2, T3, T4, T5, T6, T7]
	head, err := u.head.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	last, err := u.last.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return Tuple7[T1, T2, T3, T4, T5, T6, T7]{head.V1, head.V2, head.V3, head.V4, head.V5, head.V6, last}, nil
}

func (u append6[C, T1, T2, T3, T4, T5, T6, T7]) Print(o Tuple7[T1, T2, T3, T4, T5, T6, T7], c C) error {
	if err := u.last.Print(o.V7, c); err != nil {
		return err
	}
	return u.head.Print(Tuple6[T1, T2, T3, T4, T5, T6]{o.V1, o.V2, o.V3, o.V4, o.V5, o.V6}, c)
}

func Append7[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8 any](head Unit[C, Tuple7[T1, T2, T3, T4, T5, T6, T7]], last Unit[C, T8]) Unit[C, Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]] {
	return append7[C, T1, T2, T3, T4, T5, T6, T7, T8]{head: head, last: last}
}

type append7[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	head Unit[C, Tuple7[T1, T2, T3, T4, T5, T6, T7]]
	last Unit[C, T8]
}

func (u append7[C, T1, T2, T3, T4, T5, T6, T7, T8]) Parse(c C) (Tuple8[T1, T2, T3, T4, T5, T6, T7, T8], error) {
	var out Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]
	head, err := u.head.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	last, err := u.last.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{head.V1, head.V2, head.V3, head.V4, head.V5, head.V6, head.V7, last}, nil
}

func (u append7[C, T1, T2, T3, T4, T5, T6, T7, T8]) Print(o Tuple8[T1, T2, T3, T4, T5, T6, T7, T8], c C) error {
	if err := u.last.Print(o.V8, c); err != nil {
		return err
	}
	return u.head.Print(Tuple7[T1, T2, T3, T4, T5, T6, T7]{o.V1, o.V2, o.V3, o.V4, o.V5, o.V6, o.V7}, c)
}

func Append8[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8, T9 any](head Unit[C, Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]], last Unit[C, T9]) Unit[C, Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]] {
	return append8[C, T1, T2, T3, T4, T5, T6, T7, T8, T9]{head: head, last: last}
}

type append8[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	head Unit[C, Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]]
	last Unit[C, T9]
}

func (u append8[C, T1, T2, T3, T4, T5, T6, T7, T8, T9]) Parse(c C) (Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9], error) {
	var out Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]
	head, err := u.head.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	last, err := u.last.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{head.V1, head.V2, head.V3, head.V4, head.V5, head.V6, head.V7, head.V8, last}, nil
}

func (u append8[C, T1, T2, T3, T4, T5, T6, T7, T8, T9]) Print(o Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9], c C) error {
	if err := u.last.Print(o.V9, c); err != nil {
		return err
	}
	return u.head.Print(Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{o.V1, o.V2, o.V3, o.V4, o.V5, o.V6, o.V7, o.V8}, c)
}

func Append9[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](head Unit[C, Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]], last Unit[C, T10]) Unit[C, Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]] {
	return append9[C, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{head: head, last: last}
}

type append9[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	head Unit[C, Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]]
	last Unit[C, T10]
}

func (u append9[C, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Parse(c C) (Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10], error) {
	var out Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]
	head, err := u.head.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	last, err := u.last.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{head.V1, head.V2, head.V3, head.V4, head.V5, head.V6, head.V7, head.V8, head.V9, last}, nil
}

func (u append9[C, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Print(o Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10], c C) error {
	if err := u.last.Print(o.V10, c); err != nil {
		return err
	}
	return u.head.Print(Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{o.V1, o.V2, o.V3, o.V4, o.V5, o.V6, o.V7, o.V8, o.V9}, c)
}

func Append10[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any](head Unit[C, Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]], last Unit[C, T11]) Unit[C, Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]] {
	return append10[C, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{head: head, last: last}
}

type append10[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any] struct {
	head Unit[C, Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]]
	last Unit[C, T11]
}

func (u append10[C, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) Parse(c C) (Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11], error) {
	var out Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]
	head, err := u.head.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	last, err := u.last.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{head.V1, head.V2, head.V3, head.V4, head.V5, head.V6, head.V7, head.V8, head.V9, head.V10, last}, nil
}

func (u append10[C, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]) Print(o Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11], c C) error {
	if err := u.last.Print(o.V11, c); err != nil {
		return err
	}
	return u.head.Print(Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{o.V1, o.V2, o.V3, o.V4, o.V5, o.V6, o.V7, o.V8, o.V9, o.V10}, c)
}

func Append11[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any](head Unit[C, Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]], last Unit[C, T12]) Unit[C, Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]] {
	return append11[C, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{head: head, last: last}
}

type append11[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any] struct {
	head Unit[C, Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]]
	last Unit[C, T12]
}

func (u append11[C, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]) Parse(c C) (Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12], error) {
	var out Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]
	head, err := u.head.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	last, err := u.last.Parse(c)
	if err != nil {
		return out, wrapAt(err, c)
	}
	return Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{head.V1, head.V2, head.V3, head.V4, head.V5, head.V6, head.V7, head.V8, head.V9, head.V10, head.V11, last}, nil
}

func (u append11[C, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]) Print(o Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12], c C) error {
	if err := u.last.Print(o.V12, c); err != nil {
		return err
	}
	return u.head.Print(Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{o.V1, o.V2, o.V3, o.V4, o.V5, o.V6, o.V7, o.V8, o.V9, o.V10, o.V11}, c)
}

// Seq2 is Then under the name the rest of the SeqN family uses.
func Seq2[C Cursor, T1, T2 any](u1 Unit[C, T1], u2 Unit[C, T2]) Unit[C, Tuple2[T1, T2]] {
	return Then(u1, u2)
}

// SeqN folds an ordered list of units left to right into a single
// flat-tuple unit. This is the builder for chains longer than two.
func Seq3[C Cursor, T1, T2, T3 any](u1 Unit[C, T1], u2 Unit[C, T2], u3 Unit[C, T3]) Unit[C, Tuple3[T1, T2, T3]] {
	return Append2(Then(u1, u2), u3)
}

func Seq4[C Cursor, T1, T2, T3, T4 any](u1 Unit[C, T1], u2 Unit[C, T2], u3 Unit[C, T3], u4 Unit[C, T4]) Unit[C, Tuple4[T1, T2, T3, T4]] {
	return Append3(Append2(Then(u1, u2), u3), u4)
}

func Seq5[C Cursor, T1, T2, T3, T4, T5 any](u1 Unit[C, T1], u2 Unit[C, T2], u3 Unit[C, T3], u4 Unit[C, T4], u5 Unit[C, T5]) Unit[C, Tuple5[T1, T2, T3, T4, T5]] {
	return Append4(Append3(Append2(Then(u1, u2), u3), u4), u5)
}

func Seq6[C Cursor, T1, T2, T3, T4, T5, T6 any](u1 Unit[C, T1], u2 Unit[C, T2], u3 Unit[C, T3], u4 Unit[C, T4], u5 Unit[C, T5], u6 Unit[C, T6]) Unit[C, Tuple6[T1, T2, T3, T4, T5, T6]] {
	return Append5(Append4(Append3(Append2(Then(u1, u2), u3), u4), u5), u6)
}

func Seq7[C Cursor, T1, T2, T3, T4, T5, T6, T7 any](u1 Unit[C, T1], u2 Unit[C, T2], u3 Unit[C, T3], u4 Unit[C, T4], u5 Unit[C, T5], u6 Unit[C, T6], u7 Unit[C, T7]) Unit[C, Tuple7[T1, T2, T3, T4, T5, T6, T7]] {
	return Append6(Append5(Append4(Append3(Append2(Then(u1, u2), u3), u4), u5), u6), u7)
}

func Seq8[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8 any](u1 Unit[C, T1], u2 Unit[C, T2], u3 Unit[C, T3], u4 Unit[C, T4], u5 Unit[C, T5], u6 Unit[C, T6], u7 Unit[C, T7], u8 Unit[C, T8]) Unit[C, Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]] {
	return Append7(Append6(Append5(Append4(Append3(Append2(Then(u1, u2), u3), u4), u5), u6), u7), u8)
}

func Seq9[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8, T9 any](u1 Unit[C, T1], u2 Unit[C, T2], u3 Unit[C, T3], u4 Unit[C, T4], u5 Unit[C, T5], u6 Unit[C, T6], u7 Unit[C, T7], u8 Unit[C, T8], u9 Unit[C, T9]) Unit[C, Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]] {
	return Append8(Append7(Append6(Append5(Append4(Append3(Append2(Then(u1, u2), u3), u4), u5), u6), u7), u8), u9)
}

func Seq10[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](u1 Unit[C, T1], u2 Unit[C, T2], u3 Unit[C, T3], u4 Unit[C, T4], u5 Unit[C, T5], u6 Unit[C, T6], u7 Unit[C, T7], u8 Unit[C, T8], u9 Unit[C, T9], u10 Unit[C, T10]) Unit[C, Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]] {
	return Append9(Append8(Append7(Append6(Append5(Append4(Append3(Append2(Then(u1, u2), u3), u4), u5), u6), u7), u8), u9), u10)
}

func Seq11[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any](u1 Unit[C, T1], u2 Unit[C, T2], u3 Unit[C, T3], u4 Unit[C, T4], u5 Unit[C, T5], u6 Unit[C, T6], u7 Unit[C, T7], u8 Unit[C, T8], u9 Unit[C, T9], u10 Unit[C, T10], u11 Unit[C, T11]) Unit[C, Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]] {
	return Append10(Append9(Append8(Append7(Append6(Append5(Append4(Append3(Append2(Then(u1, u2), u3), u4), u5), u6), u7), u8), u9), u10), u11)
}

func Seq12[C Cursor, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any](u1 Unit[C, T1], u2 Unit[C, T2], u3 Unit[C, T3], u4 Unit[C, T4], u5 Unit[C, T5], u6 Unit[C, T6], u7 Unit[C, T7], u8 Unit[C, T8], u9 Unit[C, T9], u10 Unit[C, T10], u11 Unit[C, T11], u12 Unit[C, T12]) Unit[C, Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]] {
	return Append11(Append10(Append9(Append8(Append7(Append6(Append5(Append4(Append3(Append2(Then(u1, u2), u3), u4), u5), u6), u7), u8), u9), u10), u11), u12)
}
