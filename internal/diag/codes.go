package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnknownSymbolSource Code = 1006

	// Структура документа
	DocInfo         Code = 1100
	DocMissingBegin Code = 1101

	// Словари (.vct)
	VctInfo   Code = 1200
	VctSyntax Code = 1201

	// Ввод-вывод
	IOLoadFileError Code = 4001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:            "Unknown error",
		LexInfo:                "Lexical information",
		LexUnknownChar:         "Unrecognized character",
		LexUnknownSymbolSource: "Unknown vocabulary source",
		DocInfo:                "Document structure information",
		DocMissingBegin:        "Missing 'begin' section marker",
		VctInfo:                "Vocabulary information",
		VctSyntax:              "Malformed vocabulary line",
		IOLoadFileError:        "I/O load file error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 1100:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 1100 && ic < 1200:
		return fmt.Sprintf("DOC%04d", ic)
	case ic >= 1200 && ic < 1300:
		return fmt.Sprintf("VCT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
