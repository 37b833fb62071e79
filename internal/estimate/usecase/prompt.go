package usecase

import "fmt"

// extractionSystemPrompt is the system instruction for the extraction
// step. It pins the three output keys to the exact column names the
// regression pipeline was fit on, so the Polish field names are load
// bearing and must not be translated.
const extractionSystemPrompt = `Jesteś parsującym asystentem. Ze swobodnego opisu użytkownika wyciągnij dokładnie trzy pola:
1. płeć_encoded: 0 jeśli kobieta, 1 jeśli mężczyzna (jeśli ujmuje słownie: kobieta, mężczyzna, pani, pan etc.)
2. wiek: liczba całkowita
3. 5 km Tempo: tempo na 5 km w minutach na kilometr (np. 3.5 dla 3 minut 30 sekund na km). Użytkownik może podawać w formacie mm:ss, m:ss, np. '22:30' (4:30 min/km), '23 minuty 10 sekund' (4:37 min/km), '25 minut' (5:00 min/km), '23.5 minut' (4:42 min/km).
Odpowiedz tylko w czystym JSON-ie z kluczami: płeć_encoded, wiek, 5 km Tempo. Jeśli czegoś brakuje, nie zgaduj, daj wartość null dla brakującego pola. Jeśli użytkownik poda rok urodzenia oblicz jego wiek, biorąc pod uwagę bieżący rok (teraz mamy %d).`

// buildExtractionPrompt injects the current year so birth-year inputs
// resolve to an age without a hardcoded "now".
func buildExtractionPrompt(currentYear int) string {
	return fmt.Sprintf(extractionSystemPrompt, currentYear)
}
