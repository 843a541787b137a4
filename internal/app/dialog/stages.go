package dialog

import (
	"fmt"
	"strings"

	"github.com/coursier/coursier-agent/internal/domain"
)

// stageDescriptor describes one position of the pipeline: which session
// field the inbound text lands in, the instruction handed to the reply
// generator, and the stage that follows.
//
// assign reads Session.LastUserMessage; it is nil for stages that consume
// no input. instruction is nil for the terminal stage, which produces no
// reply at all.
type stageDescriptor struct {
	stage       domain.Stage
	next        domain.Stage
	assign      func(s *domain.Session)
	instruction func(s *domain.Session) string
}

// pipeline is the fixed, strictly linear stage order. StageLanguage is
// declared in the domain but the pipeline never enters it: the language
// answer is captured while entering past_courses, one turn after the
// question is asked. That offset is kept as-is from the observed dialogue.
var pipeline = []stageDescriptor{
	{
		stage: domain.StageInit,
		next:  domain.StageGoal,
		instruction: func(*domain.Session) string {
			return "Привет! Я помогу подобрать онлайн-курс. " +
				"Скажи, чему ты хочешь научиться или какой навык развить?"
		},
	},
	{
		stage:  domain.StageGoal,
		next:   domain.StageLevel,
		assign: func(s *domain.Session) { s.Goal = s.LastUserMessage },
		instruction: func(s *domain.Session) string {
			return fmt.Sprintf(
				"Отлично! Твоя цель — %s. "+
					"Какой у тебя уровень опыта — начальный, средний или продвинутый?",
				s.Goal,
			)
		},
	},
	{
		stage:  domain.StageLevel,
		next:   domain.StagePastCourses,
		assign: func(s *domain.Session) { s.Level = s.LastUserMessage },
		instruction: func(s *domain.Session) string {
			return fmt.Sprintf(
				"Поняла, уровень — %s. "+
					"На каком языке предпочитаешь учиться — русский или английский?",
				s.Level,
			)
		},
	},
	{
		stage:  domain.StagePastCourses,
		next:   domain.StageRecommend,
		assign: func(s *domain.Session) { s.Language = DetectLanguage(s.LastUserMessage) },
		instruction: func(*domain.Session) string {
			return "Спасибо! А расскажи, какие онлайн-курсы ты проходил ранее? " +
				"Это поможет подобрать что-то подходящее."
		},
	},
	{
		stage:  domain.StageRecommend,
		next:   domain.StageFeedback,
		assign: func(s *domain.Session) { s.PastCourses = s.LastUserMessage },
		instruction: func(s *domain.Session) string {
			return fmt.Sprintf(
				"Итак, твоя цель: %s, уровень: %s, язык: %s. "+
					"Ты уже проходил: %s. "+
					"Вот 1–3 подходящих курса для тебя с кратким объяснением.",
				s.Goal, s.Level, s.Language, s.PastCourses,
			)
		},
	},
	{
		stage: domain.StageFeedback,
		next:  domain.StageDone,
		instruction: func(*domain.Session) string {
			return "Подошли ли рекомендации, или хочешь скорректировать цель или уровень?"
		},
	},
	{
		stage: domain.StageDone,
		next:  domain.StageDone,
	},
}

// Advance runs the descriptor for the session's current stage: stores the
// pending answer into its field, moves the session to the next stage and
// returns the instruction for the reply generator. An empty instruction
// means the turn produces no reply (terminal stage). Advance is pure and
// cannot fail; calling it on a done session leaves the session unchanged.
func Advance(s *domain.Session) string {
	d, ok := descriptorFor(s.Stage)
	if !ok {
		// Unknown stage values cannot occur through normal flow; treat
		// them as terminal rather than guessing a transition.
		return ""
	}

	if d.assign != nil {
		d.assign(s)
	}
	s.Stage = d.next

	if d.instruction == nil {
		return ""
	}
	return d.instruction(s)
}

func descriptorFor(stage domain.Stage) (stageDescriptor, bool) {
	for _, d := range pipeline {
		if d.stage == stage {
			return d, true
		}
	}
	return stageDescriptor{}, false
}

// DetectLanguage classifies a free-text language preference. An English
// marker wins, anything else means Russian. This is a best-effort binary
// classifier; misclassification is acceptable, not an error.
func DetectLanguage(text string) domain.Language {
	t := strings.ToLower(text)
	if strings.Contains(t, "english") || strings.Contains(t, "англ") {
		return domain.LanguageEN
	}
	return domain.LanguageRU
}
