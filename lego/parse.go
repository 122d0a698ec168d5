package lego

import (
	"strings"

	"github.com/rduo1009/vocab-tuister/accido"
	"github.com/rduo1009/vocab-tuister/transfero"
)

// posHeaders maps a (case-folded) section header word to the part of
// speech it introduces, per spec.md §6.4's pos production.
var posHeaders = map[string]transfero.PartOfSpeech{
	"verb":      transfero.POSVerb,
	"noun":      transfero.POSNoun,
	"adjective": transfero.POSAdjective,
	"adverb":    transfero.POSAdverb,
	"pronoun":   transfero.POSPronoun,
	"regular":   transfero.POSRegular,
}

// ReadList parses raw vocab-list text into a VocabList, or returns an
// *InvalidVocabFileFormatError naming the offending line.
func ReadList(data []byte) (*VocabList, error) {
	list := &VocabList{}
	currentPOS := transfero.PartOfSpeech(-1) // unset: no section opened yet

	lines := strings.Split(string(data), "\n")
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "@") {
			header := strings.TrimSpace(strings.TrimPrefix(line, "@"))
			pos, ok := posHeaders[strings.ToLower(header)]
			if !ok {
				return nil, &InvalidVocabFileFormatError{Line: header, Reason: "Invalid part of speech"}
			}
			currentPOS = pos
			continue
		}

		if currentPOS == transfero.PartOfSpeech(-1) {
			return nil, &InvalidVocabFileFormatError{Line: line, Reason: "Entry found before any part-of-speech section"}
		}

		entry, err := parseEntry(line, currentPOS)
		if err != nil {
			return nil, err
		}
		list.Entries = append(list.Entries, *entry)
	}

	return list, nil
}

// parseEntry parses one "meanings: parts[, metadata]" line under pos.
func parseEntry(line string, pos transfero.PartOfSpeech) (*Entry, error) {
	meaningsField, rest, ok := strings.Cut(line, ":")
	if !ok {
		return nil, &InvalidVocabFileFormatError{Line: line, Reason: "Entry is missing the ':' separating meanings from principal parts"}
	}

	meaning := accido.ParseMeanings(strings.TrimSpace(meaningsField))
	if meaning.Principal() == "" {
		return nil, &InvalidVocabFileFormatError{Line: line, Reason: "Entry has no English meaning"}
	}

	rawParts := strings.Split(rest, ",")
	for i, p := range rawParts {
		rawParts[i] = strings.TrimSpace(p)
	}

	parts, metadata := splitMetadata(rawParts)
	if len(parts) == 0 {
		return nil, &InvalidVocabFileFormatError{Line: line, Reason: "Entry has no principal parts"}
	}

	entity, deponent, err := buildEntity(pos, parts, metadata, meaning)
	if err != nil {
		return nil, &InvalidVocabFileFormatError{Line: line, Reason: err.Error()}
	}

	return &Entry{PartOfSpeech: pos, Entity: entity, Deponent: deponent}, nil
}

// splitMetadata peels off trailing "(...)" tokens (gender, termination,
// irregularity markers) from the comma-separated field list, leaving the
// genuine principal parts in front.
func splitMetadata(fields []string) (parts []string, metadata []string) {
	end := len(fields)
	for end > 0 && strings.HasPrefix(fields[end-1], "(") && strings.HasSuffix(fields[end-1], ")") {
		end--
	}
	return fields[:end], fields[end:]
}

func hasMetadata(metadata []string, token string) bool {
	for _, m := range metadata {
		if strings.EqualFold(m, token) {
			return true
		}
	}
	return false
}

func buildEntity(pos transfero.PartOfSpeech, parts, metadata []string, meaning accido.Meanings) (accido.Entity, bool, error) {
	switch pos {
	case transfero.POSNoun:
		return buildNoun(parts, metadata, meaning)
	case transfero.POSVerb:
		return buildVerb(parts, metadata, meaning)
	case transfero.POSAdjective:
		return buildAdjective(parts, metadata, meaning)
	case transfero.POSAdverb:
		return buildAdverb(parts, meaning)
	case transfero.POSPronoun:
		return buildPronoun(parts, meaning)
	case transfero.POSRegular:
		return buildRegular(parts, meaning)
	default:
		return nil, false, &accido.InvalidInputError{Reason: "unsupported part of speech"}
	}
}
