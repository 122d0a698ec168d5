package rogo

import (
	"errors"

	"github.com/rduo1009/vocab-tuister/transfero"
)

// errInsufficientDraw is an internal retry signal raised when a sampled
// candidate cannot yield a question (e.g. too few distractors for a
// multiple-choice option count) — never propagated past Sample, which
// folds unbroken exhaustion into NoQuestionsError.
var errInsufficientDraw = errors.New("insufficient draw")

// maxDrawAttempts bounds the retries Sample spends per question before
// concluding no enabled type has a usable candidate.
const maxDrawAttempts = 200

// Sample draws settings.NumberOfQuestions questions from pool, honouring
// the enabled question types and distractor requirements of spec.md §4.4
// steps 3-5 / P4 / P5 / P6.
func Sample(settings *Settings, pool []Candidate, morph transfero.EnglishMorph, syn transfero.SynonymProvider, g *RNG) ([]Question, error) {
	types := enabledTypes(settings)
	if len(types) == 0 {
		return nil, &NoQuestionsError{}
	}

	byType := make(map[QuestionType][]Candidate, len(types))
	anyCandidates := false
	for _, t := range types {
		c := candidatesForType(pool, t)
		byType[t] = c
		if len(c) > 0 {
			anyCandidates = true
		}
	}
	if !anyCandidates {
		return nil, &NoQuestionsError{}
	}

	out := make([]Question, 0, settings.NumberOfQuestions)
	for i := 0; i < settings.NumberOfQuestions; i++ {
		q, err := drawOne(settings, types, byType, morph, syn, g)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

func drawOne(settings *Settings, types []QuestionType, byType map[QuestionType][]Candidate, morph transfero.EnglishMorph, syn transfero.SynonymProvider, g *RNG) (Question, error) {
	for attempt := 0; attempt < maxDrawAttempts; attempt++ {
		t := types[g.intn(len(types))]
		candidates := byType[t]
		if len(candidates) == 0 {
			continue
		}
		c := candidates[g.intn(len(candidates))]
		q, err := assemble(t, c, settings, candidates, morph, syn, g)
		if err != nil {
			continue
		}
		return q, nil
	}
	return Question{}, &NoQuestionsError{}
}

func assemble(t QuestionType, c Candidate, settings *Settings, siblings []Candidate, morph transfero.EnglishMorph, syn transfero.SynonymProvider, g *RNG) (Question, error) {
	switch t {
	case TypeInEngToLat:
		return assembleTypeInEngToLat(c, morph)
	case TypeInLatToEng:
		return assembleTypeInLatToEng(c, morph, syn)
	case ParseWordLatToComp:
		return assembleParseWordLatToComp(c)
	case ParseWordCompToLat:
		return assembleParseWordCompToLat(c)
	case PrincipalParts:
		return assemblePrincipalParts(c)
	case MultipleChoiceEngToLat:
		return assembleMultipleChoiceEngToLat(c, settings, siblings, morph, g)
	case MultipleChoiceLatToEng:
		return assembleMultipleChoiceLatToEng(c, settings, siblings, morph, g)
	default:
		return Question{}, errInsufficientDraw
	}
}

func englishForms(c Candidate, morph transfero.EnglishMorph) ([]string, error) {
	meaning := c.Entry.Entity.Meanings().Principal()
	return transfero.FindInflections(c.Entry.PartOfSpeech, meaning, c.Key, c.Entry.Deponent, morph)
}

func mainEnglishForm(c Candidate, morph transfero.EnglishMorph) (string, error) {
	meaning := c.Entry.Entity.Meanings().Principal()
	return transfero.FindMainInflection(c.Entry.PartOfSpeech, meaning, c.Key, c.Entry.Deponent, morph)
}

func latinForms(c Candidate) ([]string, error) {
	forms, err := c.Entry.Entity.Get(c.Key)
	if err != nil {
		return nil, err
	}
	return []string(forms), nil
}

func assembleTypeInEngToLat(c Candidate, morph transfero.EnglishMorph) (Question, error) {
	prompt, err := mainEnglishForm(c, morph)
	if err != nil {
		return Question{}, err
	}
	forms, err := latinForms(c)
	if err != nil {
		return Question{}, err
	}
	answers := dedupeSortedStrings(forms)
	return Question{Type: TypeInEngToLat, Payload: typeInPayload{
		Prompt:     prompt,
		MainAnswer: firstSorted(answers),
		Answers:    answers,
	}}, nil
}

func assembleTypeInLatToEng(c Candidate, morph transfero.EnglishMorph, syn transfero.SynonymProvider) (Question, error) {
	latForms, err := latinForms(c)
	if err != nil {
		return Question{}, err
	}
	prompt := firstSorted(latForms)

	var answers []string
	for _, meaning := range c.Entry.Entity.Meanings() {
		forms, err := transfero.FindInflections(c.Entry.PartOfSpeech, meaning, c.Key, c.Entry.Deponent, morph)
		if err != nil {
			continue
		}
		answers = append(answers, forms...)
	}
	if syn != nil {
		if extra, err := transfero.FindSynonyms(c.Entry.Entity.Meanings().Principal(), syn); err == nil {
			answers = append(answers, extra...)
		}
	}
	answers = dedupeSortedStrings(answers)
	if len(answers) == 0 {
		return Question{}, errInsufficientDraw
	}
	mainAnswer, err := mainEnglishForm(c, morph)
	if err != nil || mainAnswer == "" {
		mainAnswer = firstSorted(answers)
	}
	return Question{Type: TypeInLatToEng, Payload: typeInPayload{
		Prompt:     prompt,
		MainAnswer: mainAnswer,
		Answers:    answers,
	}}, nil
}

func assembleParseWordLatToComp(c Candidate) (Question, error) {
	forms, err := latinForms(c)
	if err != nil {
		return Question{}, err
	}
	prompt := firstSorted(forms)
	keys := c.Entity().FindKeys(prompt)
	answers := make([]string, 0, len(keys))
	for _, k := range keys {
		answers = append(answers, k.String())
	}
	answers = dedupeSortedStrings(answers)
	return Question{Type: ParseWordLatToComp, Payload: parseWordLatToCompPayload{
		Prompt:          prompt,
		DictionaryEntry: dictionaryEntryOf(c.Entity()),
		MainAnswer:      c.Key.String(),
		Answers:         answers,
	}}, nil
}

func assembleParseWordCompToLat(c Candidate) (Question, error) {
	forms, err := latinForms(c)
	if err != nil {
		return Question{}, err
	}
	answers := dedupeSortedStrings(forms)
	return Question{Type: ParseWordCompToLat, Payload: parseWordCompToLatPayload{
		Prompt:     dictionaryEntryOf(c.Entity()),
		Components: c.Key.String(),
		MainAnswer: firstSorted(answers),
		Answers:    answers,
	}}, nil
}

func assemblePrincipalParts(c Candidate) (Question, error) {
	verb, ok := c.Entity().(interface{ PrincipalParts() []string })
	if !ok {
		return Question{}, errInsufficientDraw
	}
	return Question{Type: PrincipalParts, Payload: principalPartsPayload{
		Prompt:         c.Entry.Entity.Meanings().Principal(),
		PrincipalParts: verb.PrincipalParts(),
	}}, nil
}

func assembleMultipleChoiceEngToLat(c Candidate, settings *Settings, siblings []Candidate, morph transfero.EnglishMorph, g *RNG) (Question, error) {
	prompt, err := mainEnglishForm(c, morph)
	if err != nil {
		return Question{}, err
	}
	forms, err := latinForms(c)
	if err != nil {
		return Question{}, err
	}
	answer := firstSorted(forms)

	distractors := drawDistractors(siblings, c, settings.NumberMultipleChoiceOptions-1, g, func(other Candidate) (string, string) {
		f, err := latinForms(other)
		if err != nil || len(f) == 0 {
			return "", ""
		}
		return other.Entry.Entity.Meanings().Principal(), firstSorted(f)
	})
	if len(distractors) < settings.NumberMultipleChoiceOptions-1 {
		return Question{}, errInsufficientDraw
	}

	choices := append([]string{answer}, distractors...)
	shuffleStrings(g, choices)
	return Question{Type: MultipleChoiceEngToLat, Payload: multipleChoicePayload{
		Prompt:  prompt,
		Answer:  answer,
		Choices: choices,
	}}, nil
}

func assembleMultipleChoiceLatToEng(c Candidate, settings *Settings, siblings []Candidate, morph transfero.EnglishMorph, g *RNG) (Question, error) {
	forms, err := latinForms(c)
	if err != nil {
		return Question{}, err
	}
	prompt := firstSorted(forms)
	answer, err := mainEnglishForm(c, morph)
	if err != nil || answer == "" {
		return Question{}, errInsufficientDraw
	}

	distractors := drawDistractors(siblings, c, settings.NumberMultipleChoiceOptions-1, g, func(other Candidate) (string, string) {
		a, err := mainEnglishForm(other, morph)
		if err != nil || a == "" {
			return "", ""
		}
		return other.Entry.Entity.Meanings().Principal(), a
	})
	if len(distractors) < settings.NumberMultipleChoiceOptions-1 {
		return Question{}, errInsufficientDraw
	}

	choices := append([]string{answer}, distractors...)
	shuffleStrings(g, choices)
	return Question{Type: MultipleChoiceLatToEng, Payload: multipleChoicePayload{
		Prompt:  prompt,
		Answer:  answer,
		Choices: choices,
	}}, nil
}

// drawDistractors picks up to count options from pool, excluding the
// correct candidate's own meaning and any duplicate meaning or option
// text, per spec.md §4.4 step 5 / P5. toOption reports (meaning, option)
// for a candidate; a blank option is skipped.
func drawDistractors(pool []Candidate, exclude Candidate, count int, g *RNG, toOption func(Candidate) (string, string)) []string {
	if count <= 0 {
		return nil
	}
	excludeMeaning := exclude.Entry.Entity.Meanings().Principal()
	seenMeanings := map[string]bool{excludeMeaning: true}
	seenOptions := map[string]bool{}

	var out []string
	maxAttempts := len(pool)*4 + 50
	for attempt := 0; len(out) < count && attempt < maxAttempts && len(pool) > 0; attempt++ {
		cand := pool[g.intn(len(pool))]
		meaning, option := toOption(cand)
		if option == "" || seenMeanings[meaning] || seenOptions[option] {
			continue
		}
		seenMeanings[meaning] = true
		seenOptions[option] = true
		out = append(out, option)
	}
	return out
}

func shuffleStrings(g *RNG, s []string) {
	for i := len(s) - 1; i > 0; i-- {
		j := g.intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
