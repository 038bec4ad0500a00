package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Catalog keys.
const (
	KeyTripSummary = "trip.summary"
	KeyRangeText   = "trip.range"
	KeyGuestCount  = "guests.count"
	KeyGuestNone   = "guests.none"

	KeyTitleTripDetails = "title.trip_details"
	KeyTitleGuest       = "title.guest"
	KeyTitleNewTrip     = "title.new_trip"
	KeyTitleSaveTrip    = "title.save_trip"
	KeyTitleResume      = "title.resume"

	KeyConfirmTrip     = "trip.confirm"
	KeyTripCreated     = "trip.created"
	KeyTripCreateFail  = "trip.create_failed"
	KeySaveFailed      = "trip.save_failed"
	KeySaveManual      = "trip.save_manual"
	KeyResumeFailed    = "resume.failed"
	KeyNoActiveTrip    = "resume.none"
	KeyStartNewTrip    = "resume.start_new"
	KeyForgotTrip      = "trip.forgotten"
	KeyDuplicateEmail  = "guest.duplicate"
	KeyInvalidEmail    = "validation.email.invalid_format"
	KeyDestRequired    = "validation.destination.required"
	KeyDestTooShort    = "validation.destination.too_short"
	KeyDatesIncomplete = "validation.dates.incomplete"
	KeyDatesBeforeMin  = "validation.dates.before_min"
	KeyDatesOrder      = "validation.dates.out_of_order"
	KeyFieldLocked     = "form.field_locked"
	KeyBusy            = "form.busy"
	KeyPromptYesNo     = "prompt.yes_no"
)

func init() {
	en := language.English
	message.SetString(en, KeyTripSummary, "%s from %s to %s of %s")
	message.SetString(en, KeyRangeText, "%s to %s of %s")
	message.SetString(en, KeyGuestCount, "%d person(s) invited")
	message.SetString(en, KeyGuestNone, "No email added.")
	message.SetString(en, KeyTitleTripDetails, "Trip details")
	message.SetString(en, KeyTitleGuest, "Guest")
	message.SetString(en, KeyTitleNewTrip, "New trip")
	message.SetString(en, KeyTitleSaveTrip, "Save trip")
	message.SetString(en, KeyTitleResume, "Current trip")
	message.SetString(en, KeyConfirmTrip, "Confirm the trip?")
	message.SetString(en, KeyTripCreated, "Trip created successfully!")
	message.SetString(en, KeyTripCreateFail, "Could not create the trip. Please try again.")
	message.SetString(en, KeySaveFailed, "Could not save the trip id on this device.")
	message.SetString(en, KeySaveManual, "Your trip id is %s. Open it with: planner show %s")
	message.SetString(en, KeyResumeFailed, "Could not load your current trip.")
	message.SetString(en, KeyNoActiveTrip, "No active trip.")
	message.SetString(en, KeyStartNewTrip, "Plan a new trip with: planner new")
	message.SetString(en, KeyForgotTrip, "The current trip was forgotten on this device.")
	message.SetString(en, KeyDuplicateEmail, "Email already added!")
	message.SetString(en, KeyInvalidEmail, "Invalid email!")
	message.SetString(en, KeyDestRequired, "Fill in all trip details to continue.")
	message.SetString(en, KeyDestTooShort, "The destination must have at least %d characters.")
	message.SetString(en, KeyDatesIncomplete, "Fill in all trip details to continue.")
	message.SetString(en, KeyDatesBeforeMin, "Dates before today cannot be picked.")
	message.SetString(en, KeyDatesOrder, "The trip cannot end before it starts.")
	message.SetString(en, KeyFieldLocked, "Go back to change the destination or dates.")
	message.SetString(en, KeyBusy, "The trip is already being created.")
	message.SetString(en, KeyPromptYesNo, "[y/N]")

	pt := language.BrazilianPortuguese
	message.SetString(pt, KeyTripSummary, "%s de %s a %s de %s")
	message.SetString(pt, KeyRangeText, "de %s a %s de %s")
	message.SetString(pt, KeyGuestCount, "%d pessoa(s) convidada(s)")
	message.SetString(pt, KeyGuestNone, "Nenhum e-mail adicionado.")
	message.SetString(pt, KeyTitleTripDetails, "Detalhes da viagem")
	message.SetString(pt, KeyTitleGuest, "Convidado")
	message.SetString(pt, KeyTitleNewTrip, "Nova viagem")
	message.SetString(pt, KeyTitleSaveTrip, "Salvar viagem")
	message.SetString(pt, KeyTitleResume, "Viagem atual")
	message.SetString(pt, KeyConfirmTrip, "Confirmar a viagem?")
	message.SetString(pt, KeyTripCreated, "Viagem criada com sucesso!")
	message.SetString(pt, KeyTripCreateFail, "Não foi possível criar a viagem. Tente novamente.")
	message.SetString(pt, KeySaveFailed, "Não foi possível salvar o id da viagem no dispositivo.")
	message.SetString(pt, KeySaveManual, "O id da sua viagem é %s. Abra com: planner show %s")
	message.SetString(pt, KeyResumeFailed, "Não foi possível carregar a viagem atual.")
	message.SetString(pt, KeyNoActiveTrip, "Nenhuma viagem ativa.")
	message.SetString(pt, KeyStartNewTrip, "Planeje uma nova viagem com: planner new")
	message.SetString(pt, KeyForgotTrip, "A viagem atual foi esquecida neste dispositivo.")
	message.SetString(pt, KeyDuplicateEmail, "E-mail já adicionado!")
	message.SetString(pt, KeyInvalidEmail, "E-mail inválido!")
	message.SetString(pt, KeyDestRequired, "Preencha todas as informações da viagem para seguir.")
	message.SetString(pt, KeyDestTooShort, "O destino da viagem deve ter no mínimo %d caracteres.")
	message.SetString(pt, KeyDatesIncomplete, "Preencha todas as informações da viagem para seguir.")
	message.SetString(pt, KeyDatesBeforeMin, "Não é possível selecionar datas anteriores a hoje.")
	message.SetString(pt, KeyDatesOrder, "A viagem não pode terminar antes de começar.")
	message.SetString(pt, KeyFieldLocked, "Volte para alterar o local ou as datas.")
	message.SetString(pt, KeyBusy, "A viagem já está sendo criada.")
	message.SetString(pt, KeyPromptYesNo, "[s/N]")
}
