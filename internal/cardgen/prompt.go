package cardgen

import (
	"fmt"
	"strings"
)

const systemPrompt = "Você é um especialista em concursos públicos brasileiros. " +
	"Sempre responda com JSON válido no formato solicitado."

// buildPrompt renders the user prompt for a generation request.
func buildPrompt(req Request) string {
	office := req.Office
	if office == "" {
		office = "Não especificado"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Gere %d cards de estudo (flashcards) para o seguinte contexto:\n\n", normalizeCount(req.Count))
	fmt.Fprintf(&b, "Concurso: %s\n", req.ContestName)
	fmt.Fprintf(&b, "Cargo: %s\n", office)
	fmt.Fprintf(&b, "Matéria: %s\n", req.TopicName)
	fmt.Fprintf(&b, "Subtópico: %s\n\n", req.SubtopicName)
	b.WriteString(`Instruções:
1. Crie cards no formato pergunta/resposta ou conceito/definição
2. Foque em conhecimentos específicos e práticos para concursos públicos
3. Use linguagem clara e objetiva
4. Inclua detalhes importantes como números, datas e percentuais quando relevante
5. Priorize conteúdo que costuma ser cobrado em provas
6. Classifique cada card como "easy", "medium" ou "hard"

Retorne APENAS um JSON válido no formato:
{"cards": [{"front": "Pergunta ou conceito", "back": "Resposta detalhada", "difficulty": "medium"}]}
`)
	return b.String()
}
