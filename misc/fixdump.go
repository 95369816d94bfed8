package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/fixedpoint/fixedpoint"
)

// Scratch tool for poking at fixed-point values: feed it decimal strings
// (or raw mantissas with -raw) and it prints every representation the
// library can derive. Handy when a test failure leaves you staring at a
// 39-digit mantissa.

const usage = `Fixed-point inspector

Usage: fixdump [-64] [-raw] <value>...
  -64   treat values as Fix64 instead of Fix128
  -raw  treat values as raw mantissas instead of decimal strings`

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	var use64, raw bool
	var values []string
	for _, arg := range args {
		switch arg {
		case "-64":
			use64 = true
		case "-raw":
			raw = true
		default:
			values = append(values, arg)
		}
	}

	if len(values) == 0 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	for i, s := range values {
		if i > 0 {
			fmt.Println()
		}
		var err error
		if use64 {
			err = dump64(s, raw)
		} else {
			err = dump128(s, raw)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func dump64(s string, raw bool) error {
	var x fixedpoint.Fix64
	if raw {
		bits, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		x = fixedpoint.Fix64FromRaw(bits)
	} else {
		var err error
		x, err = fixedpoint.Fix64FromString(s)
		if err != nil {
			return err
		}
	}

	fmt.Printf("value:    %s\n", x)
	fmt.Printf("mantissa: %d\n", x.Raw())
	fmt.Printf("float64:  %v\n", x.Float64())
	fmt.Printf("integral: floor %d, ceil %d\n",
		x.Integral(fixedpoint.Floor), x.Integral(fixedpoint.Ceil))
	fmt.Printf("nearest:  %d\n", x.RoundToInt64())
	if pow, err := x.NextPowerOfTen(); err == nil {
		fmt.Printf("pow10:    %s\n", pow)
	}
	fmt.Printf("decimal:  %s\n", x.Decimal())
	spew.Dump(x)
	return nil
}

func dump128(s string, raw bool) error {
	var x fixedpoint.Fix128
	if raw {
		bits, accurate, err := fixedpoint.I128FromString(s)
		if err != nil {
			return err
		}
		if !accurate {
			return fmt.Errorf("mantissa %s does not fit 128 bits", s)
		}
		x = fixedpoint.Fix128FromRaw(bits)
	} else {
		var err error
		x, err = fixedpoint.Fix128FromString(s)
		if err != nil {
			return err
		}
	}

	fmt.Printf("value:    %s\n", x)
	fmt.Printf("mantissa: %s\n", x.Raw())
	fmt.Printf("float64:  %v\n", x.Float64())
	fmt.Printf("integral: floor %s, ceil %s\n",
		x.Integral(fixedpoint.Floor), x.Integral(fixedpoint.Ceil))
	fmt.Printf("nearest:  %d\n", x.RoundToInt64())
	if pow, err := x.NextPowerOfTen(); err == nil {
		fmt.Printf("pow10:    %s\n", pow)
	}
	fmt.Printf("decimal:  %s\n", x.Decimal())
	spew.Dump(x)
	return nil
}
