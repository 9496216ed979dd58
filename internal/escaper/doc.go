// Package escaper encodes argument vectors for targets that receive a single
// command line re-parsed by the Windows command shell.
//
// Batch files run under cmd.exe, which expands and redirects on characters
// such as % and > before the script ever sees its arguments. Arguments are
// therefore quoted for the Microsoft C runtime tokenizer that ultimately
// rebuilds argv, and any argument carrying a character cmd.exe would
// reinterpret is rejected outright rather than escaped heuristically.
package escaper
