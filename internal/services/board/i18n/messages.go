package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Catalog keys shared by handlers and templates.
const (
	KeyTitle                 = "board.title"
	KeyHeading               = "board.heading"
	KeyIntro                 = "board.intro"
	KeyEmailLabel            = "board.email.label"
	KeyEmailPlaceholder      = "board.email.placeholder"
	KeyEmailRequired         = "board.email.required"
	KeyRefresh               = "board.refresh"
	KeyLoadFailedList        = "board.load.failed_list"
	KeyLoadFailedNotice      = "board.load.failed_notice"
	KeyLoading               = "board.loading"
	KeyActionRegister        = "board.action.register"
	KeyActionRegistered      = "board.action.registered"
	KeyActionUnregister      = "board.action.unregister"
	KeyActionFailRegister    = "board.action.failed_register"
	KeyActionFailUnregister  = "board.action.failed_unregister"
	KeyActionErrorFallback   = "board.action.error_fallback"
	KeyActionUnknown         = "board.action.unknown"
	KeyActionCrossOrigin     = "board.action.cross_origin"
	KeyCardPracticeArea      = "board.card.practice_area"
	KeyCardCapacity          = "board.card.capacity"
	KeyCardCapacityValue     = "board.card.capacity_value"
	KeyCardRegistered        = "board.card.registered"
	KeyCardRegisteredValue   = "board.card.registered_value"
	KeyCardSkillLevels       = "board.card.skill_levels"
	KeyCardSkillLevelsEmpty  = "board.card.skill_levels_empty"
	KeyCardCertifications    = "board.card.certifications"
	KeyCardCertsEmpty        = "board.card.certifications_empty"
	KeyCardVerticals         = "board.card.verticals"
	KeyCardVerticalsEmpty    = "board.card.verticals_empty"
	KeyCardConsultants       = "board.card.consultants"
	KeyCardConsultantsEmpty  = "board.card.consultants_empty"
	KeyCardYou               = "board.card.you"
	KeyUIError               = "board.ui_error"
	KeyUIErrorUnknown        = "board.ui_error.unknown"
	KeyUIErrorRateLimited    = "board.ui_error.rate_limited"
	KeyActionSuccessFallback = "board.action.success_fallback"
)

func init() {
	en := language.English
	message.SetString(en, KeyTitle, "Capability Board")
	message.SetString(en, KeyHeading, "Practice capabilities")
	message.SetString(en, KeyIntro, "Register your interest in the capabilities you can staff.")
	message.SetString(en, KeyEmailLabel, "Your email")
	message.SetString(en, KeyEmailPlaceholder, "name@company.com")
	message.SetString(en, KeyEmailRequired, "Enter your email to register/unregister.")
	message.SetString(en, KeyRefresh, "Refresh")
	message.SetString(en, KeyLoadFailedList, "Failed to load capabilities. Please try again later.")
	message.SetString(en, KeyLoadFailedNotice, "Could not load capabilities. If this persists, refresh the page.")
	message.SetString(en, KeyLoading, "Loading capabilities...")
	message.SetString(en, KeyActionRegister, "Register")
	message.SetString(en, KeyActionRegistered, "Registered")
	message.SetString(en, KeyActionUnregister, "Unregister")
	message.SetString(en, KeyActionFailRegister, "Failed to register. Please try again.")
	message.SetString(en, KeyActionFailUnregister, "Failed to unregister. Please try again.")
	message.SetString(en, KeyActionErrorFallback, "An error occurred")
	message.SetString(en, KeyActionUnknown, "Unknown action.")
	message.SetString(en, KeyActionCrossOrigin, "Cross-origin requests are not allowed.")
	message.SetString(en, KeyActionSuccessFallback, "Registration updated.")
	message.SetString(en, KeyCardPracticeArea, "Practice Area")
	message.SetString(en, KeyCardCapacity, "Capacity")
	message.SetString(en, KeyCardCapacityValue, "%s hours/week")
	message.SetString(en, KeyCardRegistered, "Registered")
	message.SetString(en, KeyCardRegisteredValue, "%d consultants")
	message.SetString(en, KeyCardSkillLevels, "Skill levels")
	message.SetString(en, KeyCardSkillLevelsEmpty, "No skill levels specified")
	message.SetString(en, KeyCardCertifications, "Certifications")
	message.SetString(en, KeyCardCertsEmpty, "No certifications listed")
	message.SetString(en, KeyCardVerticals, "Industry verticals")
	message.SetString(en, KeyCardVerticalsEmpty, "Not specified")
	message.SetString(en, KeyCardConsultants, "Registered consultants")
	message.SetString(en, KeyCardConsultantsEmpty, "No consultants registered yet")
	message.SetString(en, KeyCardYou, "(you)")
	message.SetString(en, KeyUIError, "UI error: %s")
	message.SetString(en, KeyUIErrorUnknown, "Unknown error")
	message.SetString(en, KeyUIErrorRateLimited, "Too many error reports.")

	pt := language.BrazilianPortuguese
	message.SetString(pt, KeyTitle, "Painel de Capacidades")
	message.SetString(pt, KeyHeading, "Capacidades da prática")
	message.SetString(pt, KeyIntro, "Registre seu interesse nas capacidades que você pode atender.")
	message.SetString(pt, KeyEmailLabel, "Seu e-mail")
	message.SetString(pt, KeyEmailPlaceholder, "nome@empresa.com")
	message.SetString(pt, KeyEmailRequired, "Informe seu e-mail para registrar/cancelar registro.")
	message.SetString(pt, KeyRefresh, "Atualizar")
	message.SetString(pt, KeyLoadFailedList, "Falha ao carregar capacidades. Tente novamente mais tarde.")
	message.SetString(pt, KeyLoadFailedNotice, "Não foi possível carregar as capacidades. Se persistir, recarregue a página.")
	message.SetString(pt, KeyLoading, "Carregando capacidades...")
	message.SetString(pt, KeyActionRegister, "Registrar")
	message.SetString(pt, KeyActionRegistered, "Registrado")
	message.SetString(pt, KeyActionUnregister, "Cancelar registro")
	message.SetString(pt, KeyActionFailRegister, "Falha ao registrar. Tente novamente.")
	message.SetString(pt, KeyActionFailUnregister, "Falha ao cancelar registro. Tente novamente.")
	message.SetString(pt, KeyActionErrorFallback, "Ocorreu um erro")
	message.SetString(pt, KeyActionUnknown, "Ação desconhecida.")
	message.SetString(pt, KeyActionCrossOrigin, "Requisições de outra origem não são permitidas.")
	message.SetString(pt, KeyActionSuccessFallback, "Registro atualizado.")
	message.SetString(pt, KeyCardPracticeArea, "Área de prática")
	message.SetString(pt, KeyCardCapacity, "Capacidade")
	message.SetString(pt, KeyCardCapacityValue, "%s horas/semana")
	message.SetString(pt, KeyCardRegistered, "Registrados")
	message.SetString(pt, KeyCardRegisteredValue, "%d consultores")
	message.SetString(pt, KeyCardSkillLevels, "Níveis de habilidade")
	message.SetString(pt, KeyCardSkillLevelsEmpty, "Nenhum nível de habilidade especificado")
	message.SetString(pt, KeyCardCertifications, "Certificações")
	message.SetString(pt, KeyCardCertsEmpty, "Nenhuma certificação listada")
	message.SetString(pt, KeyCardVerticals, "Setores")
	message.SetString(pt, KeyCardVerticalsEmpty, "Não especificado")
	message.SetString(pt, KeyCardConsultants, "Consultores registrados")
	message.SetString(pt, KeyCardConsultantsEmpty, "Nenhum consultor registrado ainda")
	message.SetString(pt, KeyCardYou, "(você)")
	message.SetString(pt, KeyUIError, "Erro de interface: %s")
	message.SetString(pt, KeyUIErrorUnknown, "Erro desconhecido")
	message.SetString(pt, KeyUIErrorRateLimited, "Muitos relatórios de erro.")
}
