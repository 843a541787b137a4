package llm

// systemPersona is constant across every generation call. It mirrors the
// bot's voice: a polite Telegram assistant that keeps turns short.
const systemPersona = `Ты полезный и вежливый Telegram-ассистент.
Веди разговор естественно, задавай 1–2 вопроса за раз,
не делай длинные инструкции, не упоминай что ты ИИ.`

// Prompt represents the system persona plus the content to send as "user".
type Prompt struct {
	System string
	User   string
}

// BuildPrompt pairs the fixed persona with the stage-specific instruction
// produced by the dialog pipeline.
func BuildPrompt(instruction string) Prompt {
	return Prompt{
		System: systemPersona,
		User:   instruction,
	}
}
