// Package command implements a small line-oriented language for driving a
// tower, used by scripts and the interactive REPL.
//
// # Syntax
//
// One command per line. Blank lines are ignored, and so is everything after a
// '#' that stands alone or starts the line ("#ff8800" is a color).
// Command names are case-insensitive and may be written in camelCase or
// kebab-case ("pushCup", "push-cup", "PUSHCUP"):
//
//	pushCup 3               # conventional cup 3
//	pushCup 7 4 6 teal      # explicit height, width and color
//	pushLid 3 orange        # lid color is optional
//	swap cup 1 cup 3
//	cover
//	height
//
// # Execution
//
// [Exec] applies one command to a tower and returns a [Result]. Mutating
// commands report the outcome through Result.OK and Result.Err; queries
// report through Result.Output. [Run] executes a whole script, stopping at
// "exit" or when the context is canceled.
package command
