package cmd

import (
	"fmt"
	"os"

	"djs/pkg/djserr"
	"djs/pkg/object"
	"djs/pkg/printer"
	djsruntime "djs/pkg/runtime"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a small prototype graph and pretty-print it",
	Long: `demo builds an "animal" prototype with a shared greet() method, an
instance object whose own property shadows nothing and whose [[Get]]
falls through to the prototype, and prints every property the way
value_pretty_print would render it.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		exitWithError("demo", "demo takes no arguments, got %d", len(args))
	}

	rt := djsruntime.New()
	defer rt.Free()

	animal := rt.NewObject(object.Null).AsObject()
	greet := rt.NewFunction(object.Null, "greet", func(this object.Value, callArgs []object.Value) object.Completion {
		return object.Normal(rt.NewString("hello from the prototype"))
	})
	djsruntime.ObjectDefineOwnProperty(animal, object.StringKey("greet"), rt.NewDataProperty(greet))
	djsruntime.ObjectDefineOwnProperty(animal, object.StringKey("legs"), rt.NewDataProperty(object.Number(4)))

	dog := rt.NewObject(object.FromObject(animal)).AsObject()
	djsruntime.ObjectDefineOwnProperty(dog, object.StringKey("name"), rt.NewDataProperty(rt.NewString("Rex")))

	fmt.Println("dog.name  =", printer.Print(djsruntime.ObjectGet(dog, object.StringKey("name"), object.FromObject(dog)).Value))
	fmt.Println("dog.legs  =", printer.Print(djsruntime.ObjectGet(dog, object.StringKey("legs"), object.FromObject(dog)).Value))

	greetFn := djsruntime.ObjectGet(dog, object.StringKey("greet"), object.FromObject(dog)).Value
	callC := djsruntime.Call(greetFn.AsObject(), object.FromObject(dog), nil)
	fmt.Println("dog.greet() =", printer.Print(callC.Value))

	fmt.Println("dog itself  =", printer.Print(object.FromObject(dog)))

	// dog itself is a plain object, not callable: [[Call]] on it falls
	// through to PlainObject's default and throws. Report the abrupt
	// completion through djserr rather than letting it pass silently.
	if badCallC := djsruntime.Call(dog, object.Undefined, nil); badCallC.IsAbrupt() {
		err := djserr.NewInternalError("demo: dog() call", printer.Inspect(badCallC.Value))
		fmt.Fprintln(os.Stderr, err.Error())
	}

	return nil
}
