package args

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type MyArgs struct {
	Verbose   bool     `arg:"v"`
	Level     int      `arg:"l"`
	Login     *string  `arg:"u"`
	FileNames []string `argRest:"true"`
}

func TestMyArgsExample1(t *testing.T) {
	myArgs := MyArgs{}
	if _, err := ParseStruct(&myArgs, []string{"-vl", "2", "-u", "user1", "file1", "file2"}); err != nil {
		panic(err)
	}
	require.True(t, myArgs.Verbose)
	require.Equal(t, 2, myArgs.Level)
	require.Equal(t, "user1", *myArgs.Login)
	require.ElementsMatch(t, []string{"file1", "file2"}, myArgs.FileNames)
}

func TestMyArgsExample2(t *testing.T) {
	defaultLogin := "admin"
	myArgs := MyArgs{
		Level: 1,
		Login: &defaultLogin,
	}
	if _, err := ParseStruct(&myArgs, []string{"file1", "-v"}); err != nil {
		panic(err)
	}
	require.False(t, myArgs.Verbose)
	require.Equal(t, 1, myArgs.Level)
	require.Equal(t, "admin", *myArgs.Login)
	require.ElementsMatch(t, []string{"file1", "-v"}, myArgs.FileNames)
}

func ExampleNew() {
	p, err := New("l,p#,d*", []string{"-lp", "8080", "-d", "/var/log", "access.log"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.GetBoolean('l'), p.GetInt('p'), p.GetString('d'))
	fmt.Println(p.NextArgument(), p.Remaining())
	// Output:
	// true 8080 /var/log
	// 4 [access.log]
}

func ExampleNewFromSchema() {
	schema := Schema{
		{Name: "n", Kind: Integer},
		{Name: "t", Kind: StringArray},
	}
	p, err := NewFromSchema(schema, []string{"-n", "3", "-t", "a", "-t", "b"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.GetInt('n'), p.GetStringArray('t'), p.Usage())
	// Output:
	// 3 [a b] -[n#,t[*]]
}

func ExampleError() {
	_, err := New("x#", []string{"-x", "Forty two"})

	var argsErr *Error
	if errors.As(err, &argsErr) {
		fmt.Println(argsErr.Code, argsErr.ArgumentID, argsErr.Parameter)
		fmt.Println(argsErr.ErrorMessage())
	}
	fmt.Println(errors.Is(err, InvalidInteger))
	// Output:
	// INVALID_INTEGER x Forty two
	// Argument -x expects an integer but was 'Forty two'.
	// true
}

func ExamplePrintUsage() {
	schema, _ := ParseSchema("v,o*,n#")
	PrintUsage(os.Stdout, "myApp", schema)
	// Output:
	// Usage of myApp:
	//   -v
	//   -o string
	//   -n integer
}
