package narrative

import "strings"

const (
	SystemName    = "S.R.A.C.P."
	SystemVersion = "v3.45.2"
	SystemTitle   = "Sistema de Recuperação de Artefatos Culturais Proibidos"
	ArtifactName  = "last_meme_final_v3.png"
)

// BootMessages are revealed one by one during the intro boot.
var BootMessages = []string{
	"Inicializando sistema de recuperação de dados...",
	"Conectando ao Arquivo Central de Memórias Digitais...",
	"Verificando credenciais de acesso nível OMEGA...",
	"Carregando protocolos de arqueologia de dados...",
	"Detectando fragmentos de mídia proibida...",
	"ALERTA: Conteúdo classificado identificado",
	"Preparando interface de restauração memética...",
	"Sistema pronto.",
}

const (
	BootLoading    = "Carregando interface segura..."
	WarningHeader  = "AVISO DE SEGURANÇA INSTITUCIONAL"
	AccessPrompt   = "Digite qualquer código para prosseguir:"
	AccessHint     = "Dica: O sistema aceita qualquer código válido. Alguns códigos podem revelar segredos..."
	AccessTooShort = "Código muito curto. Mínimo 3 caracteres."
	AccessField    = "CÓDIGO DE ACESSO"
	AccessButton   = "ACESSAR"
	SecretCode     = "MEME"
	SecretTitle    = "VOCÊ AINDA SE LEMBRA..."
	SecretGranted  = "Código secreto detectado. Acesso privilegiado concedido."
)

const warningBlock = `
████████████████████████████████████████████████████████████
█                                                          █
█   ATENÇÃO: ARQUIVO CLASSIFICADO - NÍVEL OMEGA            █
█                                                          █
█   Este terminal contém acesso ao Sistema de              █
█   Recuperação de Artefatos Culturais Proibidos           █
█   (S.R.A.C.P.) - Divisão de Arqueologia Digital          █
█                                                          █
█   O conteúdo a seguir é considerado HISTORICAMENTE       █
█   SENSÍVEL sob o Decreto 2847/2045 do Pacto da           █
█   Seriedade Internacional.                               █
█                                                          █
█   Qualquer tentativa de compartilhamento, reprodução     █
█   ou manifestação de REAÇÃO EMOCIONAL ao material        █
█   será registrada e reportada às autoridades             █
█   competentes.                                           █
█                                                          █
█   Ao prosseguir, você reconhece que:                     █
█   • Possui autorização nível OMEGA                       █
█   • Está ciente dos riscos de exposição memética         █
█   • Aceita monitoramento integral da sessão              █
█                                                          █
█   [CÓDIGO DE ACESSO: MEM-2045-FINAL-V3]                  █
█                                                          █
████████████████████████████████████████████████████████████
`

// WarningLines is the classified warning box, one string per row.
var WarningLines = strings.Split(strings.Trim(warningBlock, "\n"), "\n")

// SeedLog opens the restoration terminal.
var SeedLog = []string{
	"[SISTEMA] Interface de restauração inicializada",
	"[DADOS] Arquivo: " + ArtifactName,
	"[DADOS] Tamanho original: ████████ bytes",
	"[DADOS] Corrupção estimada: 95.2%",
	"[ALERTA] Conteúdo classificado como 'historicamente volátil'",
}

// PseudoScientificTerms label the cycling metric.
var PseudoScientificTerms = []string{
	"Ressonância Semântica Digital",
	"Coerência Entrópica de Pixels",
	"Integridade Memética Residual",
	"Desfragmentação Humorística",
	"Sincronização Irônica",
	"Calibração de Absurdo",
	"Recuperação de Contexto Cultural",
	"Estabilização de Sarcasmo",
}

// ErrorMessages may be logged on any restoration tick.
var ErrorMessages = []string{
	"ERRO: Fragmento de ironia não reconhecido",
	"AVISO: Níveis de humor instáveis detectados",
	"ALERTA: Paradoxo semântico em processamento",
	"ERRO 0x4D454D45: Memória de meme corrompida",
	"AVISO: Referência cultural não catalogada",
	"ERRO: Sobrecarga de nostalgia digital",
	"ALERTA: Piada interna detectada - contexto perdido",
	"ERRO: Camada de ironia excede limite permitido",
}

// HistorianQuotes occasionally surface under the canvas.
var HistorianQuotes = []string{
	`"Este fragmento... há algo aqui. Posso quase sentir o riso perdido."`,
	`"Décadas de busca, e finalmente... mas o que significava?"`,
	`"Era mais do que uma imagem. Era... uma forma de resistência."`,
	`"Como explicar para as gerações futuras o que perdemos?"`,
	`"O humor era nossa linguagem universal. E nós o apagamos."`,
	`"Cada pixel recuperado é uma memória coletiva restaurada."`,
	`"'Isso foi longe demais'... mas o que exatamente?"`,
	`"Talvez o verdadeiro meme sejam as memórias que fizemos pelo caminho."`,
}

// AnalysisResults are logged, in order, after an analysis.
var AnalysisResults = []string{
	"[RESULTADO] Formato detectado: Imagem com texto sobreposto (macro)",
	"[RESULTADO] Era estimada: 2020-2025 d.P.S. (depois do Pacto da Seriedade)",
	"[RESULTADO] Categoria: Humor absurdista com camadas de meta-ironia",
	"[RESULTADO] Probabilidade de origem: Fóruns anônimos (87.3%)",
	"[RESULTADO] Nível de perigo semântico: CRÍTICO",
}

const (
	LogRestoreStart  = "[PROCESSO] Iniciando tentativa de restauração #%d..."
	LogRestorePart   = "[RESULTADO] Restauração parcial. Fragmentos permanecem instáveis."
	LogDefragStart   = "[PROCESSO] Executando desfragmentação humorística..."
	LogDefragFail    = "[ERRO] Desfragmentação falhou: contexto cultural não encontrado"
	LogAnalyzeStart  = "[ANÁLISE] Escaneando padrões meméticos..."
	LogKonami        = "[SECRETO] Código Konami detectado! Modo arqueólogo ativado."
	RestorationTitle = "S.R.A.C.P. // MÓDULO DE RESTAURAÇÃO"
	ControlsTitle    = "CONTROLES DE RESTAURAÇÃO"
	RestoreLabel     = "RESTAURAR"
	RestoringLabel   = "PROCESSANDO..."
	DefragLabel      = "DESFRAGMENTAR"
	AnalyzeLabel     = "ANALISAR"
	KonamiHint       = "↑↑↓↓←→←→BA"
	SessionLabel     = "Sessão monitorada"
	ArchaeologistTag = "♦ MODO ARQUEÓLOGO ♦"
	HistorianLabel   = "O HISTORIADOR:"
	IntegrityLabel   = "Integridade do arquivo"
	LogTitle         = "LOG DO SISTEMA"
	LogFooter        = "S.R.A.C.P. Terminal v3.45"
	MetricsTitle     = "MÉTRICAS DE ANÁLISE"
	GaugeLabel       = "NÍVEL DE CORRUPÇÃO"
	AttemptsLabel    = "Tentativas: "
	FileLabel        = "ARQUIVO: "
	IntegrityCaption = "%.1f%% INTEGRIDADE"
	CriticalBanner   = "▲ ARQUIVO CRITICAMENTE CORROMPIDO ▲"
	RecordsLabel     = "%d registros"

	FinalWarningTitle   = "▲ LIMIAR DE RESTAURAÇÃO ATINGIDO ▲"
	FinalWarningBody    = "O arquivo atingiu o ponto crítico de restauração. Prosseguir pode revelar conteúdo que foi deliberadamente apagado da memória coletiva."
	FinalWarningConfirm = "Você tem certeza de que deseja ver o que foi considerado \"longe demais\"?"
	BackLabel           = "VOLTAR"
	RevealLabel         = "REVELAR"
)

// FinalNarration is the historian's closing diary, one line at a time.
var FinalNarration = []string{
	"E assim, após anos de busca obsessiva...",
	"...décadas vasculhando os escombros digitais de uma era esquecida...",
	"...eu finalmente encontrei.",
	"O último meme.",
	"A imagem que cruzou o limite.",
	"Que foi considerada 'longe demais'.",
	"Mas o que vejo diante de mim...",
	"...não é uma imagem completa.",
	"É um fragmento. Uma memória corrompida.",
	"Talvez seja essa a verdade que buscávamos.",
	"Os memes nunca foram sobre as imagens em si.",
	"Eram sobre nós. Sobre nossa capacidade de rir.",
	"De encontrar absurdo no mundano.",
	"De transformar o banal em arte efêmera.",
	"E quando proibiram o riso...",
	"...não apagaram apenas pixels.",
	"Apagaram uma parte de nossa humanidade.",
	"Este fragmento diante de mim...",
	"...é o último espelho honesto.",
	"A última prova de que um dia...",
	"...soubemos não nos levar tão a sério.",
}

// CrypticMessages are unveiled above the final canvas as intensity grows.
var CrypticMessages = []string{
	"ARQUIVO CLASSIFICADO",
	"ÚLTIMO REGISTRO ANTES DA SATURAÇÃO",
	"CONTEÚDO CONSIDERADO: INADMISSÍVEL",
	"MOTIVO: 'ISSO FOI LONGE DEMAIS'",
	"DATA: ██/██/20██",
	"LOCALIZAÇÃO: [DADOS EXPURGADOS]",
	"CRIADOR: ANÔNIMO",
	"IMPACTO: CATALISADOR DA PROIBIÇÃO GLOBAL",
}

const (
	StaticCaption    = "ACESSANDO ARQUIVO FINAL..."
	DiaryHeader      = "DIÁRIO DO HISTORIADOR - REGISTRO FINAL"
	ClosingQuestion  = "O QUE RESTARÁ DE NÓS QUANDO ATÉ O ABSURDO TIVER SIDO DELETADO?"
	ClosingRemark    = "\"O último meme\" permanece fragmentado."
	ClosingTruth     = "Talvez essa seja a única verdade que nos resta."
	RestartLabel     = "REINICIAR BUSCA"
	CreditsTitle     = "\"O Último Meme da Terra\" - Um mockumentary sobre a morte do humor"
	CreditsSubtitle  = "Desenvolvido para a disciplina de Tech Design - Cultura Pop"
)
