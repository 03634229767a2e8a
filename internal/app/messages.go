package app

import "fmt"

// The user-facing status wording lives in one place so the handlers
// stay terse and the phrasing cannot drift between them.
const (
	msgCommandCancelled = "Command cancelled"
	msgJumpedToFirstRow = "Jumped to first row"
	msgViewTop          = "View: top"
	msgViewCenter       = "View: center"
	msgViewBottom       = "View: bottom"
	msgRowYanked        = "1 row yanked"
	msgReadOnlyDelete   = "Read-only: deleting rows is disabled"
	msgReadOnlySave     = "Read-only: saving is disabled"
	msgNoMoreCells      = "No more non-empty cells"
	msgNoPreviousCells  = "No previous non-empty cells"
	msgAtFirstColumn    = "Already at first column"
	msgAllCellsEmpty    = "All cells empty"
	msgNoOtherFiles     = "No other CSV files in directory"
	msgColumnUsage      = "Usage: :c <column> (e.g., :c A, :c 5)"
)

func msgJumpedToLine(line int) string {
	return fmt.Sprintf("Jumped to line %d", line)
}

func msgJumpedToRow(row int) string {
	return fmt.Sprintf("Jumped to row %d", row)
}

func msgJumpedToColumn(letter string) string {
	return fmt.Sprintf("Jumped to column %s", letter)
}

func msgUnknownSequence(prefix, key string) string {
	return fmt.Sprintf("Unknown command: %s %s", prefix, key)
}

func msgUnknownExCommand(cmd string) string {
	return fmt.Sprintf("Unknown command: :%s", cmd)
}

func msgInvalidColumn(ref string) string {
	return fmt.Sprintf("Invalid column: %s", ref)
}

func msgLoaded(filename string) string {
	return fmt.Sprintf("Loaded: %s", filename)
}

func msgLoadFailed(path string) string {
	return fmt.Sprintf("Failed to load CSV file: %s", path)
}

func msgReloaded(filename string) string {
	return fmt.Sprintf("Reloaded: %s", filename)
}

func msgReloadFailed(path string) string {
	return fmt.Sprintf("Failed to reload file: %s", path)
}

func msgFileDeleted(filename string) string {
	return fmt.Sprintf("File deleted: %s", filename)
}

func msgClipboardError(err error) string {
	return fmt.Sprintf("Clipboard unavailable: %v", err)
}
