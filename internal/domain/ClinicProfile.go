package domain

import "strings"

// Vocabulário fixo de canais de captação oferecido pelo formulário de
// diagnóstico. A verificação de presença é sempre por igualdade exata.
const (
	ChannelInstagram   = "Instagram"
	ChannelGoogle      = "Google"
	ChannelIndicacao   = "Indicação"
	ChannelWhatsApp    = "WhatsApp"
	ChannelTrafegoPago = "Tráfego Pago"
	ChannelFacebook    = "Facebook"
	ChannelSiteBlog    = "Site/Blog"
	ChannelOutros      = "Outros"
)

// ResponseTimeImmediate é o valor do bucket de tempo de resposta no WhatsApp
// considerado adequado pelo motor de recomendações.
const ResponseTimeImmediate = "imediato"

// ClinicProfile é o registro desnormalizado com os dados autodeclarados pela
// clínica no formulário de diagnóstico. Todos os campos chegam como texto
// livre do formulário; valores monetários mantêm a formatação original
// ("R$ 50.000,00") e são interpretados apenas no momento do cálculo.
// Chaves ausentes no JSON são toleradas e resultam em campos vazios.
type ClinicProfile struct {
	// Identificação
	NomeClinica string `json:"nome_clinica"`
	Instagram   string `json:"instagram"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	Telefone    string `json:"telefone"`

	// Dados operacionais e financeiros
	NumeroCadeiras        string `json:"numero_cadeiras"`
	ProcedimentoPrincipal string `json:"procedimento_principal"`
	FaturamentoAtual      string `json:"faturamento_atual"`
	FaturamentoMeta       string `json:"faturamento_meta"`
	TicketMedio           string `json:"ticket_medio"`
	PacientesMes          string `json:"pacientes_mes"`

	// Marketing digital
	FazMarketingOnline string   `json:"faz_marketing_online"`
	CanaisAtuais       []string `json:"canais_atuais"`
	InvesteEmTrafego   string   `json:"investe_em_trafego"`

	// Marketing offline
	DistribuiMaterialImpresso string `json:"distribui_material_impresso"`
	ParticipaEventos          string `json:"participa_eventos"`
	FachadaDestacada          string `json:"fachada_destacada"`
	FezRadioOutdoor           string `json:"fez_radio_outdoor"`

	// Indicações
	TemProgramaIndicacao string `json:"tem_programa_indicacao"`
	IndicacoesMes        string `json:"indicacoes_mes"`

	// Conversão via WhatsApp
	EquipeTreinadaWhatsApp string `json:"equipe_treinada_whatsapp"`
	TempoRespostaWhatsApp  string `json:"tempo_resposta_whatsapp"`

	// Gestão
	UsaSoftwareGestao string `json:"usa_software_gestao"`
	AgendaOrganizada  string `json:"agenda_organizada"`
}

// HasChannel verifica se o canal informado está entre os canais atuais da
// clínica. A comparação é exata e sensível a maiúsculas: um valor fora do
// vocabulário nunca satisfaz nenhuma verificação canônica.
func (p *ClinicProfile) HasChannel(channel string) bool {
	for _, c := range p.CanaisAtuais {
		if c == channel {
			return true
		}
	}
	return false
}

// IsYes interpreta a resposta de um campo binário do formulário.
// As variantes do formulário gravaram tanto "nao" quanto "não", então a
// comparação normaliza espaços e caixa antes de decidir.
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "sim")
}

// IsNo é a contraparte de IsYes. Um campo vazio não é "sim" nem "não".
func IsNo(answer string) bool {
	v := strings.ToLower(strings.TrimSpace(answer))
	return v == "nao" || v == "não"
}
