package generator

import "strings"

// OutputName derives the generated file name from the task file argument.
// "Tasks" and a trailing ".php" are removed before suffix is appended, so
// "Backup" and "BackupTasks.php" both give "BackupTasks.php" for the
// default suffix.
func OutputName(taskFile, suffix string) string {
	name := strings.ReplaceAll(taskFile, "Tasks", "")
	name = strings.TrimSuffix(name, ".php")
	return name + suffix
}
