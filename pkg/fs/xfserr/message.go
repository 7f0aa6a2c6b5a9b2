package xfserr

import (
	"fmt"
	"strings"
)

// messages 每种 Kind 的消息模板。底层错误的消息会拼接在
// "Could not <verb> '<path>': " 之后。
var messages = map[Kind]func(e *FileError) string{
	MissingFile: func(e *FileError) string {
		return "The " + fileType(e) + " doesn't exist"
	},
	NoReadPermission: func(e *FileError) string {
		return "You don't have permission to read the " + fileType(e)
	},
	TooManySymlinks: func(*FileError) string {
		return "There were too many symbolic links to traverse"
	},
	OverlongPath: func(e *FileError) string {
		return "The length of the " + fileType(e) +
			"'s path or of one of its components exceeds the system limits"
	},
	ConcurrentlyReplacedDirectory: func(*FileError) string {
		return "Expected a directory, but found another type of file system object, " +
			"possibly because the directory was replaced with the new object while " +
			"the application was running"
	},
	FileIOError: func(*FileError) string {
		return "An I/O error occurred"
	},
	NoWhereFromValue: func(e *FileError) string {
		return "The " + fileType(e) + " doesn't have the value set"
	},
	UnsupportedFileSystem: func(*FileError) string {
		return "The file system doesn't support extended file attributes"
	},
	UnsupportedFileSystemObject: func(*FileError) string {
		return "That type of file system object doesn't support the attribute"
	},
	WhereFromValueLengthMismatch: func(*FileError) string {
		return "The value may have changed while it was being read"
	},
	SupposedlyImpossibleFileError: func(e *FileError) string {
		return "An unexpected error occurred (" + e.ErrorName + ")"
	},
	UnexpectedFileError: func(e *FileError) string {
		return "An unexpected error occurred (" + e.ErrorName + ")"
	},
	UnknownFileError: func(e *FileError) string {
		return fmt.Sprintf("An unknown error occurred (error code %d)", e.ErrorNumber)
	},
	MalformedWhereFromValue: func(e *FileError) string {
		return "The 'where from' value of '" + e.Path + "' is malformed"
	},
	UnexpectedWhereFromValue: func(e *FileError) string {
		return "The 'where from' value of '" + e.Path + "' doesn't have the expected form"
	},
}

// render 是从 (Kind, 字段) 到消息的纯函数。
func render(e *FileError) string {
	msg, ok := messages[e.Kind]
	if !ok {
		return "xfserr: " + e.Kind.String() + " for '" + e.Path + "'"
	}
	if !e.Kind.IsLowLevel() {
		return msg(e)
	}
	verb := e.OperationVerb
	if verb == "" {
		verb = DefaultOperationVerb
	}
	var b strings.Builder
	b.WriteString("Could not ")
	b.WriteString(verb)
	b.WriteString(" '")
	b.WriteString(e.Path)
	b.WriteString("': ")
	b.WriteString(msg(e))
	return b.String()
}

func fileType(e *FileError) string {
	if e.FileType == "" {
		return DefaultFileType
	}
	return e.FileType
}
