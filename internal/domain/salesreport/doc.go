// Package salesreport interpreta el reporte diario de ventas que exporta la caja
// (texto separado por ';', formato numérico alemán).
//
// El reporte no tiene una gramática estable: el bloque de encabezado cambia de
// largo, el título de la sección de productos aparece con varias formas y las
// columnas se desplazan entre versiones del exportador. Por eso el parser no es
// posicional: ubica la sección "Produkte", recorre sus líneas y prueba una lista
// ordenada de LineMatcher; gana la primera estrategia que produce al menos un
// producto. Las líneas que no encajan se omiten y quedan registradas como
// anomalías; solo un contenido ilegible (bytes que no son UTF-8) detiene el proceso.
//
// Estructura típica:
//
//	Tagesabschluss;Kasse 1;;
//	Datum;von;15.03.2024;bis;15.03.2024
//	...
//	Produkte;;;;
//	Artikel;Anzahl;Umsatz;Anteil
//	Mojito;12;102,00;10,5%
//	Cuba Libre;8;56,00;5,8%
package salesreport
