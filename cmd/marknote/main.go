package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/marknote/internal/commands"
)

const version = "0.1.0"

func main() {
	command := "edit"
	args := []string{}
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("marknote v%s\n", version)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	env, cleanup, err := commands.NewEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	var handler func([]string) error
	switch command {
	case "edit":
		handler = env.Edit
	case "new":
		handler = env.New
	case "list", "ls":
		handler = env.List
	case "import":
		handler = env.Import
	case "export":
		handler = env.Export
	case "convert":
		handler = env.Convert
	case "trash", "rm":
		handler = env.Trash
	case "restore":
		handler = env.Restore
	case "purge":
		handler = env.Purge
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err := handler(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	usage := `marknote - Markdown notes in your terminal

Usage:
  marknote [command] [options]

Commands:
  edit [id]         Open the note browser, or a single note (default)
  new [tag...]      Create a note and open it in the editor
  list, ls [tag]    List notes, optionally filtered by tag
  import <file>     Create a note from a text or markdown file
  export <dir>      Export all notes as markdown with front matter
  convert <file>    Canonicalize a markdown file to stdout
  trash, rm <id>    Move a note to the trash
  restore <id>      Restore a note from the trash
  purge             Delete trashed notes past the retention window
  version           Show version information
  help              Show this help message

Examples:
  marknote new
  marknote list work
  marknote import ~/inbox/ideas.md
  marknote export ~/notes-backup
`
	fmt.Print(usage)
}
