package formula

// builtinSpec describes a built-in function's arity bounds and
// implementation. Arity and name validation both happen at parse time
// (see parser.go), so callNode.eval never needs to report a "function not
// found" or "wrong argument count" runtime error — the formula grammar
// SPEC_FULL.md §4.8 keeps the runtime error surface to exactly #REF!,
// #VALUE!, #DIV/0!.
type builtinSpec struct {
	minArgs int
	maxArgs int // -1 means unbounded
	fn      func(src CellSource, args []node) Value
}

var builtins = map[string]builtinSpec{
	"SUM":     {minArgs: 1, maxArgs: -1, fn: aggregateSum},
	"AVERAGE": {minArgs: 1, maxArgs: -1, fn: aggregateAverage},
	"MIN":     {minArgs: 1, maxArgs: -1, fn: aggregateMin},
	"MAX":     {minArgs: 1, maxArgs: -1, fn: aggregateMax},
	"COUNT":   {minArgs: 1, maxArgs: -1, fn: aggregateCount},
}

// flattenNumbers evaluates every argument (expanding ranges to their member
// cells) into a flat slice of coerced numeric Values. It stops and returns
// the offending Value as soon as it sees an error, per the propagation rule
// spec.md §7 describes for computations that read an error value.
func flattenNumbers(src CellSource, args []node) ([]float64, Value, bool) {
	var out []float64
	for _, a := range args {
		if rn, ok := a.(*rangeNode); ok {
			for _, v := range rn.values(src) {
				n := asNumber(v)
				if n.IsError() {
					return nil, n, false
				}
				out = append(out, n.Num)
			}
			continue
		}
		n := asNumber(a.eval(src))
		if n.IsError() {
			return nil, n, false
		}
		out = append(out, n.Num)
	}
	return out, Value{}, true
}

func aggregateSum(src CellSource, args []node) Value {
	nums, errVal, ok := flattenNumbers(src, args)
	if !ok {
		return errVal
	}
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return Number(sum)
}

func aggregateAverage(src CellSource, args []node) Value {
	nums, errVal, ok := flattenNumbers(src, args)
	if !ok {
		return errVal
	}
	if len(nums) == 0 {
		return Error(ErrDiv0)
	}
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return Number(sum / float64(len(nums)))
}

func aggregateMin(src CellSource, args []node) Value {
	nums, errVal, ok := flattenNumbers(src, args)
	if !ok {
		return errVal
	}
	if len(nums) == 0 {
		return Number(0)
	}
	min := nums[0]
	for _, n := range nums[1:] {
		if n < min {
			min = n
		}
	}
	return Number(min)
}

func aggregateMax(src CellSource, args []node) Value {
	nums, errVal, ok := flattenNumbers(src, args)
	if !ok {
		return errVal
	}
	if len(nums) == 0 {
		return Number(0)
	}
	max := nums[0]
	for _, n := range nums[1:] {
		if n > max {
			max = n
		}
	}
	return Number(max)
}

func aggregateCount(src CellSource, args []node) Value {
	nums, errVal, ok := flattenNumbers(src, args)
	if !ok {
		return errVal
	}
	return Number(float64(len(nums)))
}
