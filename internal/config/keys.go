package config

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// Session
	TKeyGreeting     = "greeting"
	TKeyPrompt       = "prompt"
	TKeyFarewell     = "farewell"
	TKeyHello        = "hello"
	TKeyHelpHeader   = "help_header"
	TKeyUnknownCmd   = "unknown_command"   // Requires Input
	TKeyInsufficient = "insufficient_args" // Requires Command, Usage
	TKeyDidYouMean   = "did_you_mean"      // Requires Command
	TKeyChooseOne    = "choose_suggestion"
	TKeyInvalidPick  = "invalid_choice"
	TKeyCancelled    = "cancelled"
	TKeySaveFailed   = "save_failed"      // Requires Error
	TKeyFailed       = "operation_failed" // Requires Error
	TKeyInvalidInput = "invalid_input"    // Requires Error
	TKeyLineTooLong  = "line_too_long"    // Requires Max
	TKeyBookMoved    = "book_moved"       // Requires Path
	TKeyBookUnsaved  = "book_unsaved"

	// Contacts & phones
	TKeyContactAdded   = "contact_added"     // Requires Name, Phone
	TKeyPhoneAdded     = "phone_added"       // Requires Name, Phone
	TKeyPhoneChanged   = "phone_changed"     // Requires Name, Old, New
	TKeyPhoneRemoved   = "phone_removed"     // Requires Name, Phone
	TKeyPhoneList      = "phone_list"        // Requires Name, Phones
	TKeyNoPhones       = "no_phones"         // Requires Name
	TKeyContactDeleted = "contact_deleted"   // Requires Name
	TKeyContactRenamed = "contact_renamed"   // Requires Old, New
	TKeyNotFound       = "contact_not_found" // Requires Name
	TKeyPhoneNotFound  = "phone_not_found"   // Requires Name, Phone
	TKeyBookEmpty      = "book_empty"
	TKeyNoResults      = "no_results" // Requires Query

	// Birthdays
	TKeyBirthdayAdded  = "birthday_added"   // Requires Name, Birthday
	TKeyBirthdayShow   = "birthday_show"    // Requires Name, Birthday
	TKeyBirthdayNotSet = "birthday_not_set" // Requires Name
	TKeyNoUpcoming     = "no_upcoming"      // Requires Days
	TKeyUpcomingLine   = "upcoming_line"    // Requires Name, Birthday, Days
	TKeyInvalidDays    = "invalid_days"

	// Email, address, note
	TKeyEmailSet       = "email_set"       // Requires Name, Email
	TKeyEmailRemoved   = "email_removed"   // Requires Name
	TKeyEmailUnset     = "email_unset"     // Requires Name
	TKeyAddressSet     = "address_set"     // Requires Name
	TKeyAddressRemoved = "address_removed" // Requires Name
	TKeyNoteSet        = "note_set"        // Requires Name
	TKeyNoteRemoved    = "note_removed"    // Requires Name

	// Tags
	TKeyTagsAdded  = "tags_added"  // Requires Name, Tags
	TKeyTagRemoved = "tag_removed" // Requires Name, Tag
	TKeyTagList    = "tag_list"    // Requires Tags
	TKeyNoTags     = "no_tags"

	// Interchange
	TKeyVCardExported    = "vcard_exported"    // Requires Count, Path
	TKeyVCardImported    = "vcard_imported"    // Requires Count, Path
	TKeyCalendarExported = "calendar_exported" // Requires Count, Path
	TKeyCalendarSummary  = "calendar_summary"  // Requires Name, Age

	// Table headers
	TKeyColName     = "col_name"
	TKeyColPhones   = "col_phones"
	TKeyColBirthday = "col_birthday"
	TKeyColEmail    = "col_email"
	TKeyColTags     = "col_tags"
)

// TranslationKeys lists every key the console may request.
var TranslationKeys = []string{
	TKeyGreeting, TKeyPrompt, TKeyFarewell, TKeyHello, TKeyHelpHeader,
	TKeyUnknownCmd, TKeyInsufficient, TKeyDidYouMean, TKeyChooseOne,
	TKeyInvalidPick, TKeyCancelled, TKeySaveFailed, TKeyFailed, TKeyInvalidInput,
	TKeyLineTooLong, TKeyBookMoved, TKeyBookUnsaved,
	TKeyContactAdded, TKeyPhoneAdded, TKeyPhoneChanged, TKeyPhoneRemoved,
	TKeyPhoneList, TKeyNoPhones, TKeyContactDeleted, TKeyContactRenamed,
	TKeyNotFound, TKeyPhoneNotFound, TKeyBookEmpty, TKeyNoResults,
	TKeyBirthdayAdded, TKeyBirthdayShow, TKeyBirthdayNotSet, TKeyNoUpcoming,
	TKeyUpcomingLine, TKeyInvalidDays,
	TKeyEmailSet, TKeyEmailRemoved, TKeyEmailUnset, TKeyAddressSet,
	TKeyAddressRemoved, TKeyNoteSet, TKeyNoteRemoved,
	TKeyTagsAdded, TKeyTagRemoved, TKeyTagList, TKeyNoTags,
	TKeyVCardExported, TKeyVCardImported, TKeyCalendarExported, TKeyCalendarSummary,
	TKeyColName, TKeyColPhones, TKeyColBirthday, TKeyColEmail, TKeyColTags,
}
