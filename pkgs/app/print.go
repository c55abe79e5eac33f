package app

import "strings"

const helloWorld = "Hello, World!\n"

var escapes = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t", `\r`, "\r")

// HelloAction prints the greeting
func (app *ConprintApp) HelloAction() error {
	_, err := app.P.Printf(helloWorld)
	return err
}

// PrintAction renders tmpl with the arguments given on the commandline.
// With interpretEscapes, \n \t \r and \\ sequences in tmpl are turned into the characters they stand for.
func (app *ConprintApp) PrintAction(tmpl string, args []string, interpretEscapes bool) error {
	if interpretEscapes {
		tmpl = escapes.Replace(tmpl)
	}

	values := make([]any, len(args))
	for i, a := range args {
		values[i] = a
	}

	_, err := app.P.Printf(tmpl, values...)
	return err
}
