package languages

// Supported is every language code the transcription provider accepts, in
// display order.
var Supported = []Language{
	{Code: "en", Label: "English (global)"},
	{Code: "en_au", Label: "English (Australian)"},
	{Code: "en_uk", Label: "English (British)"},
	{Code: "en_us", Label: "English (US)"},
	{Code: "es", Label: "Spanish"},
	{Code: "fr", Label: "French"},
	{Code: "de", Label: "German"},
	{Code: "it", Label: "Italian"},
	{Code: "pt", Label: "Portuguese"},
	{Code: "nl", Label: "Dutch"},
	{Code: "af", Label: "Afrikaans"},
	{Code: "sq", Label: "Albanian"},
	{Code: "am", Label: "Amharic"},
	{Code: "ar", Label: "Arabic"},
	{Code: "hy", Label: "Armenian"},
	{Code: "as", Label: "Assamese"},
	{Code: "az", Label: "Azerbaijani"},
	{Code: "ba", Label: "Bashkir"},
	{Code: "eu", Label: "Basque"},
	{Code: "be", Label: "Belarusian"},
	{Code: "bn", Label: "Bengali"},
	{Code: "bs", Label: "Bosnian"},
	{Code: "br", Label: "Breton"},
	{Code: "bg", Label: "Bulgarian"},
	{Code: "my", Label: "Burmese"},
	{Code: "ca", Label: "Catalan"},
	{Code: "zh", Label: "Chinese"},
	{Code: "hr", Label: "Croatian"},
	{Code: "cs", Label: "Czech"},
	{Code: "da", Label: "Danish"},
	{Code: "et", Label: "Estonian"},
	{Code: "fo", Label: "Faroese"},
	{Code: "fi", Label: "Finnish"},
	{Code: "gl", Label: "Galician"},
	{Code: "ka", Label: "Georgian"},
	{Code: "el", Label: "Greek"},
	{Code: "gu", Label: "Gujarati"},
	{Code: "ht", Label: "Haitian"},
	{Code: "ha", Label: "Hausa"},
	{Code: "haw", Label: "Hawaiian"},
	{Code: "he", Label: "Hebrew"},
	{Code: "hi", Label: "Hindi"},
	{Code: "hu", Label: "Hungarian"},
	{Code: "is", Label: "Icelandic"},
	{Code: "id", Label: "Indonesian"},
	{Code: "ja", Label: "Japanese"},
	{Code: "jw", Label: "Javanese"},
	{Code: "kn", Label: "Kannada"},
	{Code: "kk", Label: "Kazakh"},
	{Code: "km", Label: "Khmer"},
	{Code: "ko", Label: "Korean"},
	{Code: "lo", Label: "Lao"},
	{Code: "la", Label: "Latin"},
	{Code: "lv", Label: "Latvian"},
	{Code: "ln", Label: "Lingala"},
	{Code: "lt", Label: "Lithuanian"},
	{Code: "lb", Label: "Luxembourgish"},
	{Code: "mk", Label: "Macedonian"},
	{Code: "mg", Label: "Malagasy"},
	{Code: "ms", Label: "Malay"},
	{Code: "ml", Label: "Malayalam"},
	{Code: "mt", Label: "Maltese"},
	{Code: "mi", Label: "Maori"},
	{Code: "mr", Label: "Marathi"},
	{Code: "mn", Label: "Mongolian"},
	{Code: "ne", Label: "Nepali"},
	{Code: "no", Label: "Norwegian"},
	{Code: "nn", Label: "Norwegian Nynorsk"},
	{Code: "oc", Label: "Occitan"},
	{Code: "pa", Label: "Panjabi"},
	{Code: "ps", Label: "Pashto"},
	{Code: "fa", Label: "Persian"},
	{Code: "pl", Label: "Polish"},
	{Code: "ro", Label: "Romanian"},
	{Code: "ru", Label: "Russian"},
	{Code: "sa", Label: "Sanskrit"},
	{Code: "sr", Label: "Serbian"},
	{Code: "sn", Label: "Shona"},
	{Code: "sd", Label: "Sindhi"},
	{Code: "si", Label: "Sinhala"},
	{Code: "sk", Label: "Slovak"},
	{Code: "sl", Label: "Slovenian"},
	{Code: "so", Label: "Somali"},
	{Code: "su", Label: "Sundanese"},
	{Code: "sw", Label: "Swahili"},
	{Code: "sv", Label: "Swedish"},
	{Code: "tl", Label: "Tagalog"},
	{Code: "tg", Label: "Tajik"},
	{Code: "ta", Label: "Tamil"},
	{Code: "tt", Label: "Tatar"},
	{Code: "te", Label: "Telugu"},
	{Code: "th", Label: "Thai"},
	{Code: "bo", Label: "Tibetan"},
	{Code: "tr", Label: "Turkish"},
	{Code: "tk", Label: "Turkmen"},
	{Code: "uk", Label: "Ukrainian"},
	{Code: "ur", Label: "Urdu"},
	{Code: "uz", Label: "Uzbek"},
	{Code: "vi", Label: "Vietnamese"},
	{Code: "cy", Label: "Welsh"},
	{Code: "yi", Label: "Yiddish"},
	{Code: "yo", Label: "Yoruba"},
}
